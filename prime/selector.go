package prime

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"gitlab.com/nunet/nvctl/models"
	"gitlab.com/nunet/nvctl/utils"
)

// Selector switches and queries the active GPU by delegating to the
// prime-select helper. Each call runs the helper exactly once.
type Selector struct {
	executer utils.Executer
	helper   string
}

func NewSelector(executer utils.Executer, helper string) *Selector {
	return &Selector{
		executer: executer,
		helper:   helper,
	}
}

func (s *Selector) Intel() error {
	return s.Switch(models.GPUIntel)
}

func (s *Selector) Nvidia() error {
	return s.Switch(models.GPUNvidia)
}

// Switch asks the helper to make gpu the active profile. Its output is ignored.
func (s *Selector) Switch(gpu models.GPU) error {
	_, err := s.run(gpu.String())
	return err
}

func (s *Selector) Query() (models.GPU, error) {
	output, err := s.run("query")
	if err != nil {
		return 0, err
	}

	name := strings.TrimSpace(strings.ToValidUTF8(string(output), "\uFFFD"))

	gpu, ok := models.ParseGPU(name)
	if !ok {
		return 0, &UnknownGPUError{Raw: name}
	}

	return gpu, nil
}

// run invokes the helper with a single argument and returns its stdout once
// the exit status has been checked.
func (s *Selector) run(arg string) ([]byte, error) {
	zlog.Debug("running helper", zap.String("helper", s.helper), zap.String("arg", arg))

	output, err := s.executer.Execute(s.helper, arg).Output()
	if err == nil {
		return output, nil
	}

	var exitErr *utils.ExitError
	if errors.As(err, &exitErr) {
		zlog.Debug("helper exited badly",
			zap.String("helper", s.helper),
			zap.Int("code", exitErr.Code),
			zap.String("signal", exitErr.Signal),
			zap.ByteString("stderr", exitErr.Stderr),
		)
		return nil, &SelectorError{
			Helper: s.helper,
			Arg:    arg,
			Code:   exitErr.Code,
			Signal: exitErr.Signal,
		}
	}

	return nil, &SelectorError{Helper: s.helper, Arg: arg, Err: err}
}
