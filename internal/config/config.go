// Package config manages the matmul command's settings through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AppName is used for the config file name and the environment prefix.
const AppName = "matmul"

// Configuration keys.
const (
	KeySize       = "matrix.size"
	KeyArenaChunk = "matrix.arena_chunk"
	KeyLogsLevel  = "logs.level"
	KeyLogsJSON   = "logs.json"
	KeyOutputPath = "output.path"
)

// MinSize is the smallest matrix the column-swap scenario can run on.
const MinSize = 6

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ErrInvalid is returned by Load for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that sets this field.
func (f Field) Env() string {
	return strings.ToUpper(AppName + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default lists every configuration field with its default value.
var Default = map[string]Field{
	KeySize: {
		Key:         KeySize,
		Value:       10,
		Description: "Number of rows and columns of the generated matrices",
	},
	KeyArenaChunk: {
		Key:         KeyArenaChunk,
		Value:       0,
		Description: "Slots per arena chunk for product columns; 0 allocates from the heap",
	},
	KeyLogsLevel: {
		Key:         KeyLogsLevel,
		Value:       "info",
		Description: "Minimum log level (trace, debug, info, warn, error)",
	},
	KeyLogsJSON: {
		Key:         KeyLogsJSON,
		Value:       false,
		Description: "Emit logs as JSON",
	},
	KeyOutputPath: {
		Key:         KeyOutputPath,
		Value:       "",
		Description: "File the product is written to; empty writes to standard output",
	},
}

// Setup registers defaults and environment bindings on the global viper
// instance and reads matmul.toml from the working directory if present.
func Setup() error {
	viper.SetConfigName(AppName)
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(AppName)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Settings is a validated snapshot of the configuration.
type Settings struct {
	Size       int
	ArenaChunk int
	LogLevel   logrus.Level
	LogJSON    bool
	Output     string
}

// Load reads and validates the current configuration.
func Load() (Settings, error) {
	s := Settings{
		Size:       viper.GetInt(KeySize),
		ArenaChunk: viper.GetInt(KeyArenaChunk),
		LogJSON:    viper.GetBool(KeyLogsJSON),
		Output:     viper.GetString(KeyOutputPath),
	}
	if s.Size < MinSize {
		return Settings{}, fmt.Errorf("%s = %d, must be at least %d: %w", KeySize, s.Size, MinSize, ErrInvalid)
	}
	if s.ArenaChunk < 0 {
		return Settings{}, fmt.Errorf("%s = %d, must not be negative: %w", KeyArenaChunk, s.ArenaChunk, ErrInvalid)
	}

	lvl, err := logrus.ParseLevel(viper.GetString(KeyLogsLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %v: %w", KeyLogsLevel, err, ErrInvalid)
	}
	s.LogLevel = lvl
	return s, nil
}
