package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// ServerConfig represents the configuration for the chat front end
type ServerConfig struct {
	FrontendType    string
	ListenAddress   string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// Addr returns the host:port the HTTP server binds to
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.ListenAddress, strconv.Itoa(s.Port))
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey    string
	ModelName string
}

// MonitorConfig represents the configuration for the monitoring pipeline
type MonitorConfig struct {
	MaxMessageLength int
}

// SimulatorConfig represents the configuration for the synthetic chat feed
type SimulatorConfig struct {
	Seed uint64
}

// RedisConfig represents the configuration for the redis extraction store
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	Key      string
}

// StoreConfig represents the configuration for the extraction store
type StoreConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
	Redis      RedisConfig
}

// GetServer returns the server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	readTimeout, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server read timeout: %w", err)
	}
	writeTimeout, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server write timeout: %w", err)
	}
	shutdownTimeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server shutdown timeout: %w", err)
	}

	return ServerConfig{
		FrontendType:    c.GetString("server.frontend_type"),
		ListenAddress:   c.GetString("server.listen_address"),
		Port:            c.GetInt("server.port"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		MaxBodyBytes:    int64(c.GetInt("server.max_body_bytes")),
	}, nil
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:    c.GetString("gemini.api_key"),
		ModelName: c.GetString("gemini.model_name"),
	}
}

// GetMonitor returns the monitor configuration
func (c *Config) GetMonitor() MonitorConfig {
	return MonitorConfig{
		MaxMessageLength: c.GetInt("monitor.max_message_length"),
	}
}

// GetSimulator returns the simulator configuration
func (c *Config) GetSimulator() SimulatorConfig {
	return SimulatorConfig{
		Seed: c.GetUint64("simulator.seed"),
	}
}

// GetStore returns the extraction store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		SQLitePath: c.GetString("store.sqlite_path"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
		Redis: RedisConfig{
			Address:  c.GetString("store.redis.address"),
			Password: c.GetString("store.redis.password"),
			DB:       c.GetInt("store.redis.db"),
			Key:      c.GetString("store.redis.key"),
		},
	}
}
