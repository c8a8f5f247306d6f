package di

import (
	"flag"
	"os"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/logging"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Input flags
	Message  string
	Sender   string
	Simulate int
	Seed     uint64

	// Output flags
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	return ParseFlagSet(flag.CommandLine, nil)
}

// ParseFlagSet registers the CLI flags on fs and parses args.
// A nil args slice parses the process arguments.
func ParseFlagSet(fs *flag.FlagSet, args []string) *CLIFlags {
	flags := &CLIFlags{}

	// Input flags
	fs.StringVar(&flags.Message, "message", "", "Chat message to run through the monitor")
	fs.StringVar(&flags.Sender, "sender", "You", "Sender name for -message")
	fs.IntVar(&flags.Simulate, "simulate", 0, "Number of synthetic broker messages to run through the monitor")
	fs.Uint64Var(&flags.Seed, "seed", 0, "Seed for the synthetic feed (0 picks one from the clock)")

	// Output flags
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging and per-message output")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file (store, monitor and gemini settings)")

	if args == nil {
		args = os.Args[1:]
	}
	_ = fs.Parse(args)
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		v, err := config.NewEnvViper()
		if err != nil {
			return nil, err
		}
		cfg := config.NewFromViper(v)
		if flags.ConfigFile != "" {
			loaded, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", loaded.GetViper().ConfigFileUsed()))
			cfg = loaded
		}
		applyFlags(cfg, flags)
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	if err := providePipeline(container); err != nil {
		return nil, err
	}

	return container, nil
}

// applyFlags overlays the command line flags on the configuration
func applyFlags(cfg *config.Config, flags *CLIFlags) {
	v := cfg.GetViper()

	// Set some cli specific settings
	v.Set("server.frontend_type", "cli")
	v.Set("cli.message", flags.Message)
	v.Set("cli.sender", flags.Sender)
	v.Set("cli.simulate", flags.Simulate)
	v.Set("cli.verbose", flags.Verbose)

	if flags.Seed != 0 {
		v.Set("simulator.seed", flags.Seed)
	}
}
