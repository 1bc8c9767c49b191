package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/petdb/internal/paths"
	"github.com/mesh-intelligence/petdb/pkg/types"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init [data-file]",
		Short: "Initialize petdb configuration and data file",
		Long: `Create the configuration directory and config.yaml, then create an empty
pet data file for the configured backend. Existing files are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags, args)
		},
	}
}

func runInit(cmd *cobra.Command, flags *rootFlags, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := ensureConfigDir(configDir); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	var dataFile string
	if len(args) > 0 {
		if dataFile, err = filepath.Abs(args[0]); err != nil {
			return sysError(fmt.Errorf("resolve data file: %w", err))
		}
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, flags, dataFile); err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			return err
		}
		return sysError(fmt.Errorf("write config: %w", err))
	}

	s, err := prepare(cmd, flags, args)
	if err != nil {
		return err
	}

	// Load creates the data file when it is missing.
	pets, err := s.store.Load(s.dataFile)
	if err != nil {
		return sysError(fmt.Errorf("initialize storage: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "petdb initialized successfully")
	fmt.Fprintf(out, "config: %s\n", configPath)
	fmt.Fprintf(out, "data:   %s (%s, %d pets)\n", s.dataFile, s.cfg.Backend, len(pets))
	return nil
}

// writeConfigIfMissing creates config.yaml from the defaults and any flags
// given to init. If the file already exists, the function returns nil
// (idempotent).
func writeConfigIfMissing(path string, flags *rootFlags, dataFile string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	c := types.DefaultConfig()
	c.DataFile = dataFile
	if flags.backend != "" {
		c.Backend = flags.backend
	}
	if flags.maxSize != 0 {
		c.MaxSize = flags.maxSize
	}
	if flags.logLevel != "" {
		c.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		c.LogFormat = flags.logFormat
	}
	if err := c.Validate(); err != nil {
		return userError(err)
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
