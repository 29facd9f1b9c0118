package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileType = "yaml"
	envPrefix      = "CSV2LUA"

	cfgKeyVerbose    = "verbose"
	cfgKeyStrictArgs = "strict_args"
)

// loadConfig reads the optional YAML config at path and layers environment
// variables (CSV2LUA_VERBOSE, CSV2LUA_STRICT_ARGS) and flags on top of it.
// A missing file is not an error unless it was named explicitly.
func loadConfig(path string, explicit bool, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyVerbose, false)
	v.SetDefault(cfgKeyStrictArgs, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fl := fs.Lookup(cfgKeyVerbose); fl != nil {
		if err := v.BindPFlag(cfgKeyVerbose, fl); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", cfgKeyVerbose, err)
		}
	}

	if path == "" {
		return v, nil
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return v, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType(configFileType)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
