package power

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gitlab.com/nunet/nvctl/models"
)

// Controller reads and writes the discrete GPU power rail through the
// bbswitch pseudo-file. Nothing is cached; every Query re-reads the file.
type Controller struct {
	fs   afero.Fs
	path string
}

func NewController(fs afero.Fs, path string) *Controller {
	return &Controller{
		fs:   fs,
		path: path,
	}
}

func (c *Controller) On() error {
	return c.Set(models.PowerOn)
}

func (c *Controller) Off() error {
	return c.Set(models.PowerOff)
}

// Set writes the bbswitch token for state. The file is never created: a
// missing pseudo-file means the module is not loaded.
func (c *Controller) Set(state models.PowerState) error {
	zlog.Debug("writing power state", zap.String("path", c.path), zap.String("token", state.Token()))

	f, err := c.fs.OpenFile(c.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &SurfaceError{Op: "open", Path: c.path, Err: err}
	}

	if _, err := f.WriteString(state.Token()); err != nil {
		f.Close()
		return &SurfaceError{Op: "write", Path: c.path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &SurfaceError{Op: "write", Path: c.path, Err: err}
	}

	return nil
}

func (c *Controller) Query() (models.PowerState, error) {
	contents, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return models.PowerOff, &SurfaceError{Op: "read", Path: c.path, Err: err}
	}

	zlog.Debug("read power state", zap.String("path", c.path), zap.ByteString("contents", contents))

	return ParseState(string(contents))
}

// ParseState classifies bbswitch output such as "0000:01:00.0 ON\n" by its
// trailing token.
func ParseState(contents string) (models.PowerState, error) {
	trimmed := strings.TrimSpace(contents)

	switch {
	case strings.HasSuffix(trimmed, "ON"):
		return models.PowerOn, nil
	case strings.HasSuffix(trimmed, "OFF"):
		return models.PowerOff, nil
	default:
		return models.PowerOff, &UnknownStateError{Raw: trimmed}
	}
}
