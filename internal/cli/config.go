package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend      = "backend"
	cfgKeyDataFile     = "data_file"
	cfgKeyMaxSize      = "max_size"
	cfgKeyMinAge       = "min_age"
	cfgKeyMaxAge       = "max_age"
	cfgKeySentinel     = "sentinel"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"
	cfgKeyMessagesFile = "messages_file"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# petdb configuration

# Storage backend: jsonl or sqlite
backend: jsonl

# Pet data file (optional; the command-line argument takes precedence)
# data_file: pets.jsonl

# Maximum number of pets; 0 means unbounded
max_size: 0

# Accepted pet ages (inclusive)
min_age: 1
max_age: 20

# Word that ends a batch of new pets
sentinel: done

# Logging: debug, info, warn, error; text or json
log_level: warn
log_format: text

# Optional YAML file overriding user-facing messages
# messages_file:
`

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"backend":    cfgKeyBackend,
	"max-size":   cfgKeyMaxSize,
	"log-level":  cfgKeyLogLevel,
	"log-format": cfgKeyLogFormat,
}

// loadConfig reads config.yaml from configDir using Viper, layering flags that
// were set on the command line on top. It creates the config directory and a
// default config.yaml on first run. A missing config.yaml is not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (types.Config, error) {
	var cfg types.Config

	if err := ensureConfigDir(configDir); err != nil {
		return cfg, sysError(fmt.Errorf("ensure config dir: %w", err))
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cfg, sysError(fmt.Errorf("ensure default config: %w", err))
	}

	v := viper.New()
	def := types.DefaultConfig()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyDataFile, def.DataFile)
	v.SetDefault(cfgKeyMaxSize, def.MaxSize)
	v.SetDefault(cfgKeyMinAge, def.MinAge)
	v.SetDefault(cfgKeyMaxAge, def.MaxAge)
	v.SetDefault(cfgKeySentinel, def.Sentinel)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)
	v.SetDefault(cfgKeyMessagesFile, def.MessagesFile)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, userError(fmt.Errorf("read config: %w", err))
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return cfg, sysError(fmt.Errorf("bind flag %s: %w", name, err))
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, userError(fmt.Errorf("decode config: %w", err))
	}

	// A relative data_file is taken relative to the config directory.
	if cfg.DataFile != "" && !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(configDir, cfg.DataFile)
	}
	if cfg.MessagesFile != "" && !filepath.IsAbs(cfg.MessagesFile) {
		cfg.MessagesFile = filepath.Join(configDir, cfg.MessagesFile)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, userError(fmt.Errorf("invalid config: %w", err))
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
