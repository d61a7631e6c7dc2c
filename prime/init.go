package prime

import "gitlab.com/nunet/nvctl/internal/logger"

var zlog *logger.Logger

func init() {
	zlog = logger.New("prime")
}
