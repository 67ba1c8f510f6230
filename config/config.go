package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix          = "SCHEDULER"
	defaultPort        = 9095
	defaultTimeQuantum = 2
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogDevelopment        bool
	RoundRobinTimeQuantum int
}

// LoadSchedulerConfig reads config.yaml from path, or from the working
// directory when path is empty. A missing file is only an error when a path
// was given explicitly. Environment variables prefixed with SCHEDULER_
// override file values, e.g. SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("scheduler.round_robin.time_quantum", defaultTimeQuantum)

	v.SetEnvPrefix(envPrefix)
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

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogDevelopment:        v.GetBool("log.development"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid round robin time quantum %d", c.RoundRobinTimeQuantum)
	}
	return nil
}
