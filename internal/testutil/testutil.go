// Package testutil provides testing utilities and helpers for urlargs tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/urlargs/internal/host"
)

// MockHost is a mock implementation of host.Host for testing.
type MockHost struct {
	mock.Mock
}

func (m *MockHost) Kind() host.Kind {
	args := m.Called()
	return args.Get(0).(host.Kind)
}

func (m *MockHost) Path(full bool) string {
	args := m.Called(full)
	return args.String(0)
}

func (m *MockHost) Params() []host.Param {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]host.Param)
}

func (m *MockHost) SetParam(name, value string) {
	m.Called(name, value)
}

func (m *MockHost) DeleteParam(name string) {
	m.Called(name)
}

func (m *MockHost) Hash() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockHost) SetHash(value string) {
	m.Called(value)
}

func (m *MockHost) OpenLink(url string, newContext bool) error {
	args := m.Called(url, newContext)
	return args.Error(0)
}

// NewMockHost creates a mock host at path with the given parameters. Reads
// are optional; mutations must be set up by the test.
func NewMockHost(t *testing.T, path string, params []host.Param) *MockHost {
	t.Helper()
	m := new(MockHost)

	m.On("Kind").Return(host.KindMemory).Maybe()
	m.On("Path", false).Return(path).Maybe()
	m.On("Params").Return(params).Maybe()
	m.On("Hash").Return("").Maybe()

	return m
}

// NewMemoryHost creates a memory host at rawURL and fails the test on error.
func NewMemoryHost(t *testing.T, rawURL string) *host.Memory {
	t.Helper()
	m, err := host.NewMemory(rawURL)
	if err != nil {
		t.Fatalf("failed to create memory host: %v", err)
	}
	return m
}
