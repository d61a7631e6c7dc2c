package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/nvctl/cmd/backend"
)

var powerActions = []action{
	{name: "on", short: "Turn the GPU on"},
	{name: "off", short: "Turn the GPU off"},
	{name: "query", short: "Print the power state of the GPU"},
}

func NewPowerCmd(powerManager backend.PowerManager) *cobra.Command {
	cmd := newGroupCmd("power", "Query and configure the discrete GPU's power state")

	for _, a := range powerActions {
		cmd.AddCommand(newActionCmd(a, func(c *cobra.Command) error {
			return runPowerAction(c.OutOrStdout(), powerManager, c.Name())
		}))
	}

	return cmd
}

func runPowerAction(w io.Writer, powerManager backend.PowerManager, name string) error {
	switch name {
	case "on":
		return powerManager.On()
	case "off":
		return powerManager.Off()
	case "query":
		state, err := powerManager.Query()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, state)
		return nil
	default:
		panic(fmt.Sprintf("unreachable: power action %q has no handler", name))
	}
}
