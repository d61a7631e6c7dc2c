package utils

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available on this host")
	}
}

func TestCmdExecutorOutput(t *testing.T) {
	requireShell(t)

	executer := &CmdExecutor{}
	out, err := executer.Execute("sh", "-c", "echo nvidia").Output()

	require.NoError(t, err)
	assert.Equal(t, "nvidia\n", string(out))
}

func TestCmdExecutorExitStatus(t *testing.T) {
	requireShell(t)

	executer := &CmdExecutor{}
	out, err := executer.Execute("sh", "-c", "echo partial; echo oops >&2; exit 2").Output()

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))

	assert := assert.New(t)
	assert.Equal(2, exitErr.Code)
	assert.False(exitErr.Signaled())
	assert.Equal("exit status 2", exitErr.Error())
	assert.Equal("oops\n", string(exitErr.Stderr))
	assert.Equal("partial\n", string(out))
}

func TestCmdExecutorSignal(t *testing.T) {
	requireShell(t)

	executer := &CmdExecutor{}
	_, err := executer.Execute("sh", "-c", "kill -KILL $$").Output()

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))

	assert := assert.New(t)
	assert.True(exitErr.Signaled())
	assert.Equal("killed", exitErr.Signal)
	assert.Equal("signal: killed", exitErr.Error())
}

func TestCmdExecutorNotFound(t *testing.T) {
	executer := &CmdExecutor{}
	_, err := executer.Execute("nvctl-no-such-helper").Output()

	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "terminated by a signal", (&ExitError{Code: -1}).Error())
}
