package main

import (
	"gitlab.com/nunet/nvctl/cmd"
)

func main() {
	// Execute command-line interface; exits with the command's status
	cmd.Execute()
}
