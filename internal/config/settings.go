package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
)

type BridgeConfig struct {
	// bytes reserved for the per-dispatcher invocation trace, 0 disables it
	TraceCapacity     int  `mapstructure:"trace_capacity"`
	ForwardToDelegate bool `mapstructure:"forward_to_delegate"`
}

type Settings struct {
	Bridge BridgeConfig `mapstructure:"bridge"`
	Env    string       `mapstructure:"env"`
	Debug  bool         `mapstructure:"debug"`
}

func (s Settings) BridgeOptions() bridge.Options {
	return bridge.Options{
		TraceCapacity:     s.Bridge.TraceCapacity,
		ForwardToDelegate: s.Bridge.ForwardToDelegate,
	}
}

// Load reads config_<ENV>.yaml from the working directory. A missing file
// leaves the defaults in place; a malformed one is an error.
func Load() (*Settings, error) {
	v := newViper()
	v.SetConfigName("config_" + genEnv(v))
	v.AddConfigPath(".")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return decode(v)
}

// LoadFile reads an explicit config file; unlike Load the file must exist.
func LoadFile(path string) (*Settings, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("RXC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := bridge.DefaultOptions()
	v.SetDefault("env", "dev")
	v.SetDefault("debug", false)
	v.SetDefault("bridge.trace_capacity", def.TraceCapacity)
	v.SetDefault("bridge.forward_to_delegate", def.ForwardToDelegate)
	return v
}

func decode(v *viper.Viper) (*Settings, error) {
	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if settings.Bridge.TraceCapacity < 0 {
		return nil, fmt.Errorf("bridge.trace_capacity must be >= 0, got %d", settings.Bridge.TraceCapacity)
	}
	return &settings, nil
}

func genEnv(v *viper.Viper) string {
	env := v.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
