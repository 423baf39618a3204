//nolint:errcheck
package scpi

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockSession implements Session interface for testing
type MockSession struct {
	mock.Mock
}

var _ Session = (*MockSession)(nil)

func (m *MockSession) Write(command string) error {
	args := m.Called(command)
	return args.Error(0)
}

func (m *MockSession) Query(command string, maxLen int, delay time.Duration) (string, error) {
	args := m.Called(command, maxLen, delay)
	return args.String(0), args.Error(1)
}

func (m *MockSession) AutoErrorCheck() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSession) Resource() string {
	args := m.Called()
	return args.String(0)
}
