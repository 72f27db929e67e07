package device_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploiu/padmap/device"
)

type stubBackend struct{ count int }

func (b stubBackend) Count() int { return b.count }

func (b stubBackend) Open(index int) (device.Device, error) {
	return nil, errors.New("stub")
}

func TestRegistry(t *testing.T) {
	device.Register("stub-a", stubBackend{count: 2})
	device.Register("stub-b", stubBackend{count: 0})

	b, err := device.Lookup("stub-a")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Count())

	_, err = device.Lookup("stub-missing")
	assert.ErrorContains(t, err, `unknown backend "stub-missing"`)

	names := device.Names()
	assert.Contains(t, names, "stub-a")
	assert.Contains(t, names, "stub-b")
	assert.IsIncreasing(t, names)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	device.Register("stub-dup", stubBackend{})
	assert.Panics(t, func() {
		device.Register("stub-dup", stubBackend{})
	})
}
