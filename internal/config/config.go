// Package config resolves magmerge settings from defaults, an optional config
// file, MAGMERGE_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"magmerge/internal/logging"
	"magmerge/internal/output"
)

// EnvPrefix prefixes every environment variable (MAGMERGE_FORMAT, ...).
const EnvPrefix = "MAGMERGE"

// Defaults.
const (
	DefaultOut       = "-"
	DefaultFormat    = output.FormatTSV
	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatConsole
)

// Config is the resolved configuration of one run.
type Config struct {
	Manifest      string `mapstructure:"manifest"`
	Out           string `mapstructure:"out"`
	Format        string `mapstructure:"format"`
	NoHeader      bool   `mapstructure:"no_header"`
	PrintPaths    bool   `mapstructure:"print_paths"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	EmptyExitCode int    `mapstructure:"empty_exit_code"`
}

// NewViper returns a viper instance with defaults and env binding in place.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("manifest", "")
	v.SetDefault("out", DefaultOut)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("no_header", false)
	v.SetDefault("print_paths", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("empty_exit_code", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Key maps a flag name to its config key ("no-header" -> "no_header").
func Key(flag string) string { return strings.ReplaceAll(flag, "-", "_") }

// BindFlags binds every flag in fs except skip to the key of the same name.
// Only flags set on the command line override env and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, skip ...string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "help" || f.Name == "version" || contains(skip, f.Name) {
			return
		}
		err = v.BindPFlag(Key(f.Name), f)
	})
	return err
}

// Load reads the optional config file and decodes the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges. The manifest is not required here; only the
// commands that read it insist on it.
func (c Config) Validate() error {
	if err := output.ValidateFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != logging.FormatConsole && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("invalid --log-format %q (want console | json)", c.LogFormat)
	}
	if c.EmptyExitCode < 0 || c.EmptyExitCode > 255 {
		return errors.New("--empty-exit-code must be in 0..255")
	}
	if c.Out == "" {
		return errors.New("--out must not be empty (use '-' for stdout)")
	}
	return nil
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
