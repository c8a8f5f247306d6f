package factory

import (
	"context"

	"github.com/mikey/broker-monitor/internal/adapters/gemini"
	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/core"
	"go.uber.org/zap"
)

// GeminiFactory creates the optional Google generative client
type GeminiFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewGeminiFactory creates a new Gemini factory
func NewGeminiFactory(cfg *config.Config, logger *zap.Logger) *GeminiFactory {
	return &GeminiFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateGenerativeStatus builds the Gemini client. Failures are logged and
// reported as an unavailable status instead of being returned.
func (f *GeminiFactory) CreateGenerativeStatus() core.GenerativeStatus {
	geminiCfg := f.cfg.GetGemini()

	client, err := gemini.NewClient(context.Background(), geminiCfg.APIKey, geminiCfg.ModelName, f.logger)
	if err != nil {
		f.logger.Warn("Google generative client unavailable, continuing with rule-based replies only", zap.Error(err))
		return gemini.Unavailable{Reason: err}
	}
	return client
}
