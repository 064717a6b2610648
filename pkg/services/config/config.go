package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the stats backend connection settings for one site. All
// fields are required; a report run never starts with a partial config.
type Config struct {
	APIKey     string `mapstructure:"apikey"`
	BaseURL    string `mapstructure:"baseurl"`
	APIVersion string `mapstructure:"apiversion"`
	SiteID     string `mapstructure:"site_id"`
	Period     string `mapstructure:"period"`
}

// Load reads a YAML config file from the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	for _, kv := range []struct{ key, val string }{
		{"apikey", c.APIKey},
		{"baseurl", c.BaseURL},
		{"apiversion", c.APIVersion},
		{"site_id", c.SiteID},
		{"period", c.Period},
	} {
		if kv.val == "" {
			missing = append(missing, kv.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration values: %s", strings.Join(missing, ", "))
	}
	return nil
}
