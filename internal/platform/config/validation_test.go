package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig mirrors the local profile with the sqlite store selected.
func validConfig() *Config {
	return &Config{
		App: AppConfig{Name: "quotebook-service", Version: "1.0.0", Environment: "local"},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  30 * time.Second,
			MaxRequestSize:  1 << 20,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		Store: StoreConfig{
			Driver: "sqlite",
			Mongo: MongoConfig{
				URI:            "mongodb://localhost:27017",
				Database:       "quotebook",
				Collection:     "quotes",
				ConnectTimeout: 10 * time.Second,
			},
			SQLite: SQLiteConfig{Path: "./data/quotebook.db"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string // empty means valid
	}{
		{name: "baseline", mutate: func(*Config) {}},
		{name: "mongo driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }},
		{name: "empty mongo uri is left to the store", mutate: func(c *Config) { c.Store.Mongo.URI = "" }},
		{name: "prod environment", mutate: func(c *Config) { c.App.Environment = "prod" }},
		{name: "trace level", mutate: func(c *Config) { c.Log.Level = "trace" }},
		{name: "pretty format", mutate: func(c *Config) { c.Log.Format = "pretty" }},
		{name: "max port", mutate: func(c *Config) { c.Server.Port = 65535 }},
		{name: "sampling rate edges", mutate: func(c *Config) { c.Telemetry.SamplingRate = 1 }},
		{
			name: "log file enabled",
			mutate: func(c *Config) {
				c.Log.File = LogFileConfig{Enabled: true, Path: "/var/log/quotebook.log", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 28}
			},
		},
		{
			name: "telemetry enabled",
			mutate: func(c *Config) {
				c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://localhost:4317", ServiceName: "quotebook-service", SamplingRate: 0.5}
			},
		},

		{name: "missing app name", mutate: func(c *Config) { c.App.Name = "" }, wantErr: "app.name is required"},
		{name: "unknown environment", mutate: func(c *Config) { c.App.Environment = "staging" }, wantErr: "app.environment must be one of"},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 65536 }, wantErr: "server.port must be at most 65535"},
		{name: "missing host", mutate: func(c *Config) { c.Server.Host = "" }, wantErr: "server.host is required"},
		{name: "short read timeout", mutate: func(c *Config) { c.Server.ReadTimeout = 500 * time.Millisecond }, wantErr: "server.read_timeout"},
		{name: "short request timeout", mutate: func(c *Config) { c.Server.RequestTimeout = 50 * time.Millisecond }, wantErr: "server.request_timeout"},
		{name: "zero body limit", mutate: func(c *Config) { c.Server.MaxRequestSize = 0 }, wantErr: "server.max_request_size"},
		{name: "uppercase level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }, wantErr: "log.level must be one of"},
		{name: "xml format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "log file without path", mutate: func(c *Config) { c.Log.File.Enabled = true }, wantErr: "log.file.path is required when"},
		{
			name:    "log file too large",
			mutate:  func(c *Config) { c.Log.File = LogFileConfig{Enabled: true, Path: "/tmp/q.log", MaxSizeMB: 1025} },
			wantErr: "log.file.max_size must be at most 1024",
		},
		{
			name:    "telemetry without endpoint",
			mutate:  func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "quotebook-service"} },
			wantErr: "telemetry.endpoint",
		},
		{
			name:    "telemetry endpoint not a url",
			mutate:  func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "not-a-url", ServiceName: "q"} },
			wantErr: "telemetry.endpoint must be a valid URL",
		},
		{
			name:    "telemetry without service name",
			mutate:  func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://localhost:4317"} },
			wantErr: "telemetry.service_name",
		},
		{name: "negative sampling rate", mutate: func(c *Config) { c.Telemetry.SamplingRate = -0.1 }, wantErr: "telemetry.sampling_rate"},
		{name: "postgres driver", mutate: func(c *Config) { c.Store.Driver = "postgres" }, wantErr: "store.driver must be one of: mongo sqlite"},
		{name: "missing collection", mutate: func(c *Config) { c.Store.Mongo.Collection = "" }, wantErr: "store.mongo.collection is required"},
		{name: "short connect timeout", mutate: func(c *Config) { c.Store.Mongo.ConnectTimeout = 10 * time.Millisecond }, wantErr: "store.mongo.connect_timeout"},
		{name: "missing sqlite path", mutate: func(c *Config) { c.Store.SQLite.Path = "" }, wantErr: "store.sqlite.path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_ReportsEveryField(t *testing.T) {
	err := (&Config{App: AppConfig{Environment: "invalid"}, Server: ServerConfig{Port: -1}}).Validate()

	require.Error(t, err)
	for _, field := range []string{"app.name", "app.version", "app.environment", "server.port", "store"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestFormatFieldPath(t *testing.T) {
	tests := map[string]string{
		"Config.store.mongo.connect_timeout": "store.mongo.connect_timeout",
		"Config.Log.File.Path":               "log.file.path",
		"Config.telemetry.sampling_rate":     "telemetry.sampling_rate",
		"port":                               "port",
	}

	for namespace, want := range tests {
		assert.Equal(t, want, formatFieldPath(namespace), namespace)
	}
}
