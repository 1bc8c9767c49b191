package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/petdb/pkg/petdb"
)

const modulePath = "github.com/mesh-intelligence/petdb"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the petdb version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "petdb v%s\nmodule: %s\n", petdb.Version, modulePath)
			return nil
		},
	}
}
