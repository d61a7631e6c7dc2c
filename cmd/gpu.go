package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/nvctl/cmd/backend"
)

var gpuActions = []action{
	{name: "intel", short: "Switch to the Intel GPU"},
	{name: "nvidia", short: "Switch to the Nvidia GPU"},
	{name: "query", short: "Print the currently-active GPU"},
}

func NewGPUCmd(gpuSwitcher backend.GPUSwitcher) *cobra.Command {
	cmd := newGroupCmd("gpu", "Query and change the GPU currently in use")

	for _, a := range gpuActions {
		cmd.AddCommand(newActionCmd(a, func(c *cobra.Command) error {
			return runGPUAction(c.OutOrStdout(), gpuSwitcher, c.Name())
		}))
	}

	return cmd
}

func runGPUAction(w io.Writer, gpuSwitcher backend.GPUSwitcher, name string) error {
	switch name {
	case "intel":
		return gpuSwitcher.Intel()
	case "nvidia":
		return gpuSwitcher.Nvidia()
	case "query":
		gpu, err := gpuSwitcher.Query()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, gpu)
		return nil
	default:
		panic(fmt.Sprintf("unreachable: gpu action %q has no handler", name))
	}
}
