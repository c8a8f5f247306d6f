package factory

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/mikey/broker-monitor/internal/adapters/cli"
	"github.com/mikey/broker-monitor/internal/adapters/gemini"
	"github.com/mikey/broker-monitor/internal/adapters/store"
	"github.com/mikey/broker-monitor/internal/adapters/web"
	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/simulator"
	"github.com/mikey/broker-monitor/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStoreFactory_CreateExtractionStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	tests := []struct {
		name     string
		settings map[string]any
		check    func(t *testing.T, s core.ExtractionStore)
	}{
		{
			name:     "memory",
			settings: map[string]any{"store.type": "memory"},
			check: func(t *testing.T, s core.ExtractionStore) {
				assert.IsType(t, &store.MemoryStore{}, s)
			},
		},
		{
			name: "sqlite creates the parent directory",
			settings: map[string]any{
				"store.type":        "sqlite",
				"store.sqlite_path": filepath.Join(t.TempDir(), "nested", "extractions.db"),
			},
			check: func(t *testing.T, s core.ExtractionStore) {
				require.IsType(t, &store.SQLiteStore{}, s)
				s.(*store.SQLiteStore).Stop()
			},
		},
		{
			name: "redis",
			settings: map[string]any{
				"store.type":          "redis",
				"store.redis.address": mr.Addr(),
			},
			check: func(t *testing.T, s core.ExtractionStore) {
				require.IsType(t, &store.RedisStore{}, s)
				s.(*store.RedisStore).Stop()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := config.NewEmptyViper()
			for k, val := range tc.settings {
				v.Set(k, val)
			}
			f := NewStoreFactory(config.NewFromViper(v), zaptest.NewLogger(t))

			s, err := f.CreateExtractionStore()
			require.NoError(t, err)
			tc.check(t, s)
		})
	}
}

func TestStoreFactory_UnsupportedType(t *testing.T) {
	v := config.NewEmptyViper()
	v.Set("store.type", "postgres")

	_, err := NewStoreFactory(config.NewFromViper(v), zaptest.NewLogger(t)).CreateExtractionStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store type")
}

func TestGeminiFactory_DegradesWithoutKey(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())

	status := NewGeminiFactory(cfg, zaptest.NewLogger(t)).CreateGenerativeStatus()
	require.IsType(t, gemini.Unavailable{}, status)
	assert.False(t, status.Available())
	assert.ErrorIs(t, status.(gemini.Unavailable).Reason, gemini.ErrMissingAPIKey)
}

func TestFrontendFactory_CreateFrontend(t *testing.T) {
	logger := zaptest.NewLogger(t)
	service := core.NewMonitorService(core.NewMonitor(), core.NewExtractor(), core.NewResponder(), store.NewMemoryStore(logger), logger)

	build := func(v map[string]any) (*FrontendFactory, *bytes.Buffer) {
		vp := config.NewEmptyViper()
		for k, val := range v {
			vp.Set(k, val)
		}
		out := &bytes.Buffer{}
		return NewFrontendFactory(
			config.NewFromViper(vp),
			logger,
			service,
			simulator.NewSeededGenerator(1),
			utils.NewTextProcessor(logger),
			gemini.Unavailable{},
			out,
		), out
	}

	f, _ := build(nil)
	fe, err := f.CreateFrontend()
	require.NoError(t, err)
	assert.IsType(t, &web.Server{}, fe)

	f, out := build(map[string]any{"server.frontend_type": "cli", "cli.message": "Coffee break time"})
	fe, err = f.CreateFrontend()
	require.NoError(t, err)
	require.IsType(t, &cli.Frontend{}, fe)
	require.NoError(t, fe.Start())
	assert.Contains(t, out.String(), "From: You")

	f, _ = build(map[string]any{"server.frontend_type": "smtp"})
	_, err = f.CreateFrontend()
	assert.Error(t, err)

	f, _ = build(map[string]any{"server.read_timeout": "soon"})
	_, err = f.CreateFrontend()
	assert.Error(t, err)
}

func TestTextProcessorFactory(t *testing.T) {
	tp := NewTextProcessorFactory(zaptest.NewLogger(t)).CreateTextProcessor()
	assert.Equal(t, "abcdef", tp.Normalize("abcdef"))
	assert.ErrorIs(t, tp.CheckLength("abcdef", 3), utils.ErrMessageTooLong)
}
