// Package config loads settings for the calc command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the calc command's configuration. Keys match flag names.
type Config struct {
	// Digits is the number of decimal places in results, or -1 for the
	// shortest exact form.
	Digits int `mapstructure:"digits" yaml:"digits"`
	// Lines evaluates each input line as a separate expression.
	Lines bool `mapstructure:"lines" yaml:"lines"`
	// Echo prints the postfix form of each expression before its result.
	Echo bool `mapstructure:"echo" yaml:"echo"`
	// Balance closes unclosed parentheses before evaluating.
	Balance bool `mapstructure:"balance" yaml:"balance"`
	// Normalize maps display glyphs and fullwidth forms to ASCII before
	// evaluating.
	Normalize bool `mapstructure:"normalize" yaml:"normalize"`
	// LogLevel is the minimum level of diagnostic logs.
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
}

// Defaults returns the default value for each configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"digits":    8,
		"lines":     false,
		"echo":      false,
		"balance":   true,
		"normalize": true,
		"log-level": "warn",
	}
}

// Load reads the configuration. Later sources override earlier ones: defaults,
// then a calc.yaml file, then CALC_* environment variables, then flags that
// were set on the command line. If file is empty, calc.yaml is searched for
// in the user's config directory and the working directory, and it is not an
// error if there is none.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	var c Config
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("calc")
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "calc"))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("calc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return c, err
	}
	return c, nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

// Dump renders the configuration as YAML.
func Dump(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}
