// Package config loads the p2quantile configuration from defaults, an
// optional YAML file and P2_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the p2quantile configuration.
type Config struct {
	// Quantiles are the fractions tracked for every input.
	Quantiles []float64 `mapstructure:"quantiles" validate:"required,min=1,dive,gt=0,lt=1"`
	// Format selects the output sink. auto picks table on a terminal and
	// text otherwise.
	Format string `mapstructure:"format" validate:"oneof=auto text table yaml"`
	// Exact also keeps every sample to report exact percentiles next to the
	// estimates. Memory then grows with the input.
	Exact bool    `mapstructure:"exact"`
	Log   Logging `mapstructure:"log" validate:"required"`
}

// Logging configures the global logger.
type Logging struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("quantiles", []float64{0.1, 0.5, 0.9})
	v.SetDefault("format", "auto")
	v.SetDefault("exact", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("p2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	return v
}

// Load reads the configuration. An empty path looks for p2quantile.yaml in
// the working directory and carries on with defaults when there is none.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("p2quantile")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags and reports every failing
// field at once.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("unable to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Errorf("invalid config:\n\t%s", strings.Join(msgs, "\n\t"))
}
