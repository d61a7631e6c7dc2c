package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time:
// -ldflags "-X gitlab.com/nunet/nvctl/cmd.Version=..."
var Version = "0.1.0"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nvctl %s\n", Version)
		},
	}
}
