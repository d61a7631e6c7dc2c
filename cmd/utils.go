package cmd

import (
	"github.com/spf13/cobra"
)

type action struct {
	name  string
	short string
}

// newGroupCmd builds a command that only holds actions. Invoked on its own it
// prints help and fails with a usage status.
func newGroupCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  usageArgs(cobra.NoArgs),
		RunE:  showHelp,
	}
}

func newActionCmd(a action, run func(cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   a.name,
		Short: a.short,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
}

func showHelp(cmd *cobra.Command, args []string) error {
	cmd.Help()
	return &usageError{cmdPath: cmd.CommandPath()}
}

// usageArgs tags positional argument errors as usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{cmdPath: cmd.CommandPath(), err: err}
		}
		return nil
	}
}
