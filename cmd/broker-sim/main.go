package main

import (
	"fmt"
	"os"

	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/di"
	"github.com/mikey/broker-monitor/internal/ports"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	// Build the dependency injection container
	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run pushes the requested messages through the monitor and prints the report
func run(
	logger *zap.Logger,
	frontend ports.Frontend,
	aiStatus core.GenerativeStatus,
	store core.ExtractionStore,
) error {
	defer logger.Sync()

	runErr := frontend.Start()
	if err := frontend.Stop(); err != nil {
		logger.Error("Failed to stop front end", zap.Error(err))
	}

	if closer, ok := aiStatus.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close generative client", zap.Error(err))
		}
	}
	if stopper, ok := store.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	return runErr
}
