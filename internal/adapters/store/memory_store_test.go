package store

import (
	"context"
	"testing"

	"github.com/mikey/broker-monitor/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sampleEntry() core.StoreEntry {
	return core.StoreEntry{
		Message: "name: David Cohen phone: 054-123-4567 salary: 15000",
		Sender:  "Sarah_TLV",
		Data: core.Extraction{
			Tenant:         core.Tenant{Name: "David Cohen", Phone: "054-123-4567", Salary: "15000"},
			ExtractedCount: 3,
		},
	}
}

func TestMemoryStore_SaveAndAll(t *testing.T) {
	s := NewMemoryStore(zaptest.NewLogger(t))
	ctx := context.Background()

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, s.Save(ctx, "2026-10-18T09:30:00.000000", sampleEntry()))

	all, err = s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]core.StoreEntry{"2026-10-18T09:30:00.000000": sampleEntry()}, all)
}

func TestMemoryStore_IsAppendOnly(t *testing.T) {
	s := NewMemoryStore(zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", sampleEntry()))
	err := s.Save(ctx, "k", core.StoreEntry{Message: "other"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntry(), all["k"])
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	s := NewMemoryStore(zaptest.NewLogger(t))
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "k", sampleEntry()))

	all, err := s.All(ctx)
	require.NoError(t, err)
	delete(all, "k")

	again, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}
