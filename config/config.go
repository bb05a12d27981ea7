package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port          int
	LogLevel      string
	LogFormat     string
	MaxProcesses  int // upper bound on processes per simulation request
	MaxConcurrent int // simulations served at once, the rest get 503
	BodyLimit     int
	History       HistoryConfig
}

type HistoryConfig struct {
	Enabled   bool
	Path      string
	ListLimit int
}

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing default file is not an error.
// Every key can be overridden from the environment with the SJF_ prefix,
// e.g. SJF_SERVER_MAX_PROCESSES.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SJF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:          v.GetInt("port"),
		LogLevel:      v.GetString("log.level"),
		LogFormat:     v.GetString("log.format"),
		MaxProcesses:  v.GetInt("server.max_processes"),
		MaxConcurrent: v.GetInt("server.max_concurrent"),
		BodyLimit:     v.GetInt("server.body_limit"),
		History: HistoryConfig{
			Enabled:   v.GetBool("history.enabled"),
			Path:      v.GetString("history.path"),
			ListLimit: v.GetInt("history.list_limit"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.max_processes", 100)
	v.SetDefault("server.max_concurrent", 64)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", "sjf.db")
	v.SetDefault("history.list_limit", 20)
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("server.max_processes must be positive, got %d", c.MaxProcesses)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("server.max_concurrent must be positive, got %d", c.MaxConcurrent)
	}
	if c.History.ListLimit <= 0 {
		return fmt.Errorf("history.list_limit must be positive, got %d", c.History.ListLimit)
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path is required when history is enabled")
	}
	return nil
}

func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
