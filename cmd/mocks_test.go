package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"gitlab.com/nunet/nvctl/cmd/backend"
	"gitlab.com/nunet/nvctl/models"
	"gitlab.com/nunet/nvctl/utils"
)

// ========= MOCK IMPLEMENTATIONS ==========

type MockPowerManager struct {
	mock.Mock
}

func (m *MockPowerManager) On() error {
	return m.Called().Error(0)
}

func (m *MockPowerManager) Off() error {
	return m.Called().Error(0)
}

func (m *MockPowerManager) Query() (models.PowerState, error) {
	args := m.Called()
	return args.Get(0).(models.PowerState), args.Error(1)
}

type MockGPUSwitcher struct {
	mock.Mock
}

func (m *MockGPUSwitcher) Intel() error {
	return m.Called().Error(0)
}

func (m *MockGPUSwitcher) Nvidia() error {
	return m.Called().Error(0)
}

func (m *MockGPUSwitcher) Query() (models.GPU, error) {
	args := m.Called()
	return args.Get(0).(models.GPU), args.Error(1)
}

// stubExecuter answers every command with the same output and error
type stubExecuter struct {
	output []byte
	err    error
	calls  []string
}

func (se *stubExecuter) Execute(name string, arg ...string) utils.Commander {
	se.calls = append(se.calls, name+" "+strings.Join(arg, " "))
	return se
}

func (se *stubExecuter) Output() ([]byte, error) {
	return se.output, se.err
}

// ========= HELPERS ==========

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, powerManager backend.PowerManager, gpuSwitcher backend.GPUSwitcher, args ...string) result {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	root := NewRootCmd(powerManager, gpuSwitcher)
	root.SetOut(stdout)
	root.SetErr(stderr)

	code := run(root, args)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
