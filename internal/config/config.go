package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// HTTPConfig represents HTTP server configuration
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DemoConfig holds the timing knobs for the simulated behaviors. Tests set
// these to milliseconds; the defaults mirror the browser-facing experience.
type DemoConfig struct {
	Workers           int
	WorkerMinDuration time.Duration
	WorkerMaxDuration time.Duration
	RunRetention      time.Duration
	JanitorInterval   time.Duration
	SSEInterval       time.Duration
	SlowDelay         time.Duration
	SyncDelay         time.Duration
	DisabledDelay     time.Duration
}

// Config represents the application configuration
type Config struct {
	LogLevel string
	HTTP     HTTPConfig
	Demo     DemoConfig
}

// Load builds the configuration from defaults, an optional config.yaml, and
// HXDEMO_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("HXDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		LogLevel: v.GetString("log.level"),
		HTTP: HTTPConfig{
			Host:            v.GetString("http.host"),
			Port:            v.GetInt("http.port"),
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			IdleTimeout:     v.GetDuration("http.idle_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Demo: DemoConfig{
			Workers:           v.GetInt("demo.workers"),
			WorkerMinDuration: v.GetDuration("demo.worker_min_duration"),
			WorkerMaxDuration: v.GetDuration("demo.worker_max_duration"),
			RunRetention:      v.GetDuration("demo.run_retention"),
			JanitorInterval:   v.GetDuration("demo.janitor_interval"),
			SSEInterval:       v.GetDuration("demo.sse_interval"),
			SlowDelay:         v.GetDuration("demo.slow_delay"),
			SyncDelay:         v.GetDuration("demo.sync_delay"),
			DisabledDelay:     v.GetDuration("demo.disabled_delay"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.read_timeout", 30*time.Second)
	// The /slow and /sse routes hold the response open; the write timeout
	// must stay comfortably above the longest configured delay.
	v.SetDefault("http.write_timeout", 0)
	v.SetDefault("http.idle_timeout", 120*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("demo.workers", 5)
	v.SetDefault("demo.worker_min_duration", 10*time.Second)
	v.SetDefault("demo.worker_max_duration", 90*time.Second)
	v.SetDefault("demo.run_retention", 10*time.Minute)
	v.SetDefault("demo.janitor_interval", time.Minute)
	v.SetDefault("demo.sse_interval", 2*time.Second)
	v.SetDefault("demo.slow_delay", 2*time.Second)
	v.SetDefault("demo.sync_delay", time.Second)
	v.SetDefault("demo.disabled_delay", time.Second)
}
