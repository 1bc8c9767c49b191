package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/petdb/internal/messages"
	"github.com/mesh-intelligence/petdb/internal/paths"
	"github.com/mesh-intelligence/petdb/internal/petdb"
	"github.com/mesh-intelligence/petdb/internal/prompt"
	"github.com/mesh-intelligence/petdb/internal/registry"
	"github.com/mesh-intelligence/petdb/internal/store"
	"github.com/mesh-intelligence/petdb/pkg/types"
)

// session is everything runMenu needs once configuration is settled.
type session struct {
	cfg      types.Config
	dataFile string
	catalog  *messages.Catalog
	store    types.Store
	logger   *slog.Logger
}

// prepare resolves configuration, logging, messages, the data file and the
// store. It does not touch the data file.
func prepare(cmd *cobra.Command, flags *rootFlags, args []string) (*session, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	slog.SetDefault(logger)
	logger.Debug("config loaded", "config_dir", configDir, "backend", cfg.Backend, "max_size", cfg.MaxSize)

	catalog, err := messages.Load(cfg.MessagesFile)
	if err != nil {
		return nil, userError(err)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	dataFile, err := paths.ResolveDataFile(arg, cfg.DataFile, cfg.DefaultDataFile())
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data file: %w", err))
	}

	st, err := store.Open(cfg.Backend, cfg.AgeRange())
	if err != nil {
		return nil, userError(err)
	}

	return &session{cfg: cfg, dataFile: dataFile, catalog: catalog, store: st, logger: logger}, nil
}

// runMenu loads the pets, runs the menu and saves the pets. A load failure
// ends the process with exitSysError before the menu starts. A save failure
// is reported but does not change the exit code.
func runMenu(cmd *cobra.Command, flags *rootFlags, args []string) error {
	s, err := prepare(cmd, flags, args)
	if err != nil {
		return err
	}

	console := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	console.Println(s.catalog.Get("welcome"))

	pets, err := s.store.Load(s.dataFile)
	if err != nil {
		console.Println(s.catalog.Get("load.error", s.dataFile, err))
		return sysError(err)
	}

	reg, err := registry.New(registry.WithPets(pets...))
	if err != nil {
		return sysError(err)
	}
	if s.cfg.MaxSize > 0 {
		if err := reg.SetMaxSize(s.cfg.MaxSize); err != nil {
			// The file already holds more pets than the cap allows; keep
			// the data and run without a cap.
			s.logger.Warn("max size not applied", "max_size", s.cfg.MaxSize, "pets", reg.Len(), "error", err)
		}
	}

	h, err := petdb.New(reg, console, petdb.Options{
		Sentinel: s.cfg.Sentinel,
		AgeRange: s.cfg.AgeRange(),
		Messages: s.catalog,
	})
	if err != nil {
		return userError(err)
	}

	runErr := h.Run()

	if err := s.store.Save(s.dataFile, reg.Snapshot().Pets()); err != nil {
		s.logger.Error("save failed", "path", s.dataFile, "error", err)
		console.Println(s.catalog.Get("save.error", s.dataFile, err))
	}

	if runErr != nil {
		return sysError(runErr)
	}
	return nil
}
