package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/nvctl/cmd/backend"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func NewRootCmd(powerManager backend.PowerManager, gpuSwitcher backend.GPUSwitcher) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nvctl",
		Short: "Control the discrete GPU of a dual-GPU laptop",
		Long: `nvctl switches the discrete GPU's power rail through bbswitch and selects
the active GPU through prime-select.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: false,
			HiddenDefaultCmd:  true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          usageArgs(cobra.NoArgs),
		RunE:          showHelp,
	}

	cmd.PersistentFlags().BoolP("quiet", "q", false, "Do not print error messages")
	cmd.PersistentFlags().BoolP("help", "h", false, "Display this help message")
	cmd.Flags().BoolP("version", "V", false, "Display version information")
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{cmdPath: c.CommandPath(), err: err}
	})

	cmd.AddCommand(NewPowerCmd(powerManager))
	cmd.AddCommand(NewGPUCmd(gpuSwitcher))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the command line and exits with 0 on success, 1 when the
// requested operation failed and 2 on malformed invocations.
func Execute() {
	os.Exit(run(rootCmd, os.Args[1:]))
}

func run(root *cobra.Command, args []string) int {
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	quiet, _ := root.PersistentFlags().GetBool("quiet")
	return reportError(root.ErrOrStderr(), err, quiet)
}
