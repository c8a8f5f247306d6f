package di

import (
	"io"
	"os"

	"go.uber.org/dig"

	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/factory"
	"github.com/mikey/broker-monitor/internal/logging"
	"github.com/mikey/broker-monitor/internal/ports"
	"github.com/mikey/broker-monitor/internal/simulator"
	"github.com/mikey/broker-monitor/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := providePipeline(container); err != nil {
		return nil, err
	}

	return container, nil
}

// providePipeline registers everything downstream of the config and logger
func providePipeline(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewGeminiFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return err
	}

	// Register report output for the CLI front end
	if err := container.Provide(func() io.Writer { return os.Stdout }); err != nil {
		return err
	}

	// Register extraction store
	if err := container.Provide(func(f *factory.StoreFactory) (core.ExtractionStore, error) {
		return f.CreateExtractionStore()
	}); err != nil {
		return err
	}

	// Register generative client status
	if err := container.Provide(func(f *factory.GeminiFactory) core.GenerativeStatus {
		return f.CreateGenerativeStatus()
	}); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register message generator
	if err := container.Provide(func(cfg *config.Config) *simulator.Generator {
		return simulator.NewSeededGenerator(cfg.GetSimulator().Seed)
	}); err != nil {
		return err
	}

	// Register pipeline stages and the monitor service
	for _, constructor := range []any{
		core.NewMonitor,
		core.NewExtractor,
		core.NewResponder,
		core.NewMonitorService,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Register front end
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return err
	}

	return nil
}
