// Package cli wires the fastglob command tree: flag parsing via pflag,
// layered configuration via viper, and validated config binding via
// go-playground/validator.
package cli

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the validated, merged view of fastglob's persistent flags and
// optional config file, applied to every subcommand.
type Config struct {
	NoEscape            bool `mapstructure:"no-escape"`
	Period              bool `mapstructure:"period"`
	NoCheck             bool `mapstructure:"no-check"`
	NoSort              bool `mapstructure:"no-sort"`
	Mark                bool `mapstructure:"mark"`
	Brace               bool `mapstructure:"brace"`
	Tilde               bool `mapstructure:"tilde"`
	TildeCheck          bool `mapstructure:"tilde-check"`
	OnlyDir             bool `mapstructure:"only-dir"`
	ExtGlob             bool `mapstructure:"extglob"`
	DoublestarRecursive bool `mapstructure:"doublestar"`
	GitIgnore           bool `mapstructure:"gitignore"`
	CaseFold            bool `mapstructure:"case-fold" validate:"-"`
}

var validate = validator.New() //nolint:gochecknoglobals // single reusable validator instance, as recommended by the library.

// loadConfig merges CLI flags (already bound into v by the caller) with an
// optional config file, then validates the result.
func loadConfig(v *viper.Viper) (*Config, error) {
	v.SetConfigName("fastglob")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/fastglob")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
