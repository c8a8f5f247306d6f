package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/broker-monitor/internal/core"
	"github.com/mikey/broker-monitor/internal/di"
	"github.com/mikey/broker-monitor/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	frontend ports.Frontend,
	aiStatus core.GenerativeStatus,
	store core.ExtractionStore,
) error {
	defer logger.Sync()

	// Start the front end
	if err := frontend.Start(); err != nil {
		logger.Error("Failed to start front end", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the front end
	if err := frontend.Stop(); err != nil {
		logger.Error("Failed to stop front end", zap.Error(err))
	}

	closeResources(logger, aiStatus, store)

	logger.Info("Shutdown complete")
	return nil
}

// closeResources releases the generative client and the extraction store
func closeResources(logger *zap.Logger, aiStatus core.GenerativeStatus, store core.ExtractionStore) {
	if closer, ok := aiStatus.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close generative client", zap.Error(err))
		}
	}

	if stopper, ok := store.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}
