package factory

import (
	"fmt"
	"io"

	"github.com/mikey/broker-monitor/internal/adapters/cli"
	"github.com/mikey/broker-monitor/internal/adapters/web"
	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/ports"
	"github.com/mikey/broker-monitor/internal/simulator"
	"github.com/mikey/broker-monitor/internal/utils"
	"go.uber.org/zap"
)

// FrontendFactory creates front ends based on configuration
type FrontendFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	service       *core.MonitorService
	generator     *simulator.Generator
	textProcessor *utils.TextProcessor
	aiStatus      core.GenerativeStatus
	out           io.Writer
}

// NewFrontendFactory creates a new front end factory. out receives the CLI report.
func NewFrontendFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.MonitorService,
	generator *simulator.Generator,
	textProcessor *utils.TextProcessor,
	aiStatus core.GenerativeStatus,
	out io.Writer,
) *FrontendFactory {
	return &FrontendFactory{
		cfg:           cfg,
		logger:        logger,
		service:       service,
		generator:     generator,
		textProcessor: textProcessor,
		aiStatus:      aiStatus,
		out:           out,
	}
}

// CreateFrontend creates a front end based on the configuration
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	serverCfg, err := f.cfg.GetServer()
	if err != nil {
		return nil, err
	}
	monitorCfg := f.cfg.GetMonitor()

	switch serverCfg.FrontendType {
	case "http":
		return web.NewServer(
			serverCfg,
			monitorCfg,
			f.cfg.GetBool("metrics.enabled"),
			f.service,
			f.generator,
			f.textProcessor,
			f.aiStatus,
			f.logger,
		), nil
	case "cli":
		return cli.NewFrontend(
			f.service,
			f.generator,
			f.textProcessor,
			cli.Options{
				Message:          f.cfg.GetString("cli.message"),
				Sender:           f.cfg.GetString("cli.sender"),
				Simulate:         f.cfg.GetInt("cli.simulate"),
				MaxMessageLength: monitorCfg.MaxMessageLength,
				Verbose:          f.cfg.GetBool("cli.verbose"),
			},
			f.out,
			f.logger,
		), nil
	default:
		return nil, fmt.Errorf("unsupported frontend type: %s", serverCfg.FrontendType)
	}
}
