package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mikey/broker-monitor/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "extractions-test.db"), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(s.Stop)
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	withEmail := core.StoreEntry{
		Message: "urgent credit check for dana@rent.co.il",
		Sender:  "Avi_RG",
		Data:    core.Extraction{Tenant: core.Tenant{Email: "dana@rent.co.il"}, ExtractedCount: 1},
	}
	require.NoError(t, s.Save(ctx, "2026-10-18T09:30:00.000000", sampleEntry()))
	require.NoError(t, s.Save(ctx, "2026-10-18T09:30:00.000001", withEmail))

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]core.StoreEntry{
		"2026-10-18T09:30:00.000000": sampleEntry(),
		"2026-10-18T09:30:00.000001": withEmail,
	}, all)
}

func TestSQLiteStore_RejectsDuplicateKey(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", sampleEntry()))
	assert.Error(t, s.Save(ctx, "k", sampleEntry()))
}

func TestSQLiteStore_RejectsEmptyExtraction(t *testing.T) {
	s := newTestSQLiteStore(t)

	err := s.Save(context.Background(), "k", core.StoreEntry{Message: "hello"})
	assert.Error(t, err)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "k", sampleEntry()))
	first.Stop()

	second, err := NewSQLiteStore(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(second.Stop)

	all, err := second.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntry(), all["k"])
}
