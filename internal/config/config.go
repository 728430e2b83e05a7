package config

import (
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/sensor"
	"github.com/spf13/viper"
)

const (
	// DefaultInterval is the daemon collection interval in seconds
	DefaultInterval = 2
	// DefaultCacheTTL is the snapshot cache TTL in milliseconds
	DefaultCacheTTL = 1000
)

type Threshold struct {
	Warning  float64 `mapstructure:"warning"`
	Critical float64 `mapstructure:"critical"`
}

type Config struct {
	Interval   int                  `mapstructure:"interval"`
	CacheTTL   int                  `mapstructure:"cache_ttl"`
	Debug      bool                 `mapstructure:"debug"`
	Verbose    bool                 `mapstructure:"verbose"`
	Hardware   bool                 `mapstructure:"hardware"`
	Disks      bool                 `mapstructure:"disks"`
	GPU        bool                 `mapstructure:"gpu"`
	Thresholds map[string]Threshold `mapstructure:"thresholds"`
}

// Load reads the configuration from /etc/tempmon.toml (or the file named
// by TEMPMON_CONFIG) with environment variable overrides. A missing
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetConfigName("tempmon")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc")
	v.SetEnvPrefix("TEMPMON")
	v.AutomaticEnv()

	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("hardware", true)
	v.SetDefault("disks", true)
	v.SetDefault("gpu", true)

	if path := os.Getenv("TEMPMON_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.CacheTTL <= 0 {
		return errFactory.New(errors.ErrInvalidTTL)
	}
	if c.Interval <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "interval must be positive")
	}

	return nil
}

// TTL returns the cache TTL as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Millisecond
}

// ThresholdTable builds the classification table: built-in defaults
// overlaid with any [thresholds.<type>] sections from the config file.
func (c *Config) ThresholdTable() sensor.ThresholdTable {
	table := sensor.DefaultThresholds()
	for name, t := range c.Thresholds {
		table[sensor.SensorType(strings.ToLower(name))] = sensor.Thresholds{
			Warning:  t.Warning,
			Critical: t.Critical,
		}
	}

	return table
}
