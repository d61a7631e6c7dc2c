package cmd

import (
	"github.com/spf13/afero"

	"gitlab.com/nunet/nvctl/internal/config"
	"gitlab.com/nunet/nvctl/power"
	"gitlab.com/nunet/nvctl/prime"
	"gitlab.com/nunet/nvctl/utils"
)

var (
	cfg          = config.GetConfig()
	powerService = power.NewController(afero.NewOsFs(), cfg.Power.Path)
	gpuService   = prime.NewSelector(&utils.CmdExecutor{}, cfg.Prime.Helper)
	rootCmd      = NewRootCmd(powerService, gpuService)
)
