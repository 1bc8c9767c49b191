// Package cli implements the petdb command-line interface.
//
// The root command loads the pet file, runs the interactive menu and saves
// the file on the way out. "init" prepares the config directory and data
// file; "version" prints the build version.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	maxSize   int
	logLevel  string
	logFormat string
}

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func userError(err error) error { return &ExitError{Code: exitUserError, Err: err} }

func sysError(err error) error { return &ExitError{Code: exitSysError, Err: err} }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "petdb" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "petdb [data-file]",
		Short: "A console pet database",
		Long: `petdb keeps a list of pets (name and age) in a file and lets you view,
add, update, remove and search them from a numbered menu.

The optional data-file argument overrides the data_file setting in
config.yaml, the PETDB_DATA_FILE environment variable and the default
(pets.jsonl, or pets.db for the sqlite backend, in the working directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, flags, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/petdb)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: jsonl or sqlite")
	root.PersistentFlags().IntVar(&flags.maxSize, "max-size", 0, "maximum number of pets (0 = unbounded)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "petdb:", err)
		os.Exit(ExitCode(err))
	}
}
