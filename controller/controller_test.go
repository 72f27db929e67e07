package controller_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploiu/padmap/controller"
	padtest "github.com/ploiu/padmap/internal/testing"
)

func newBackend(devices ...*padtest.FakeDevice) *padtest.FakeBackend {
	return &padtest.FakeBackend{Devices: devices}
}

func pad(t *testing.T) *controller.Controller {
	t.Helper()
	c, err := controller.Open(newBackend(&padtest.FakeDevice{DeviceName: "pad"}), 0)
	require.NoError(t, err)
	return c
}

func TestOpen(t *testing.T) {
	t.Run("every valid index", func(t *testing.T) {
		backend := newBackend(
			&padtest.FakeDevice{DeviceName: "first"},
			&padtest.FakeDevice{DeviceName: "second"},
			&padtest.FakeDevice{DeviceName: "third"},
		)
		for i := 0; i < backend.Count(); i++ {
			c, err := controller.Open(backend, i)
			require.NoError(t, err)
			assert.Equal(t, i, c.Index())
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		backend := newBackend(&padtest.FakeDevice{})
		for _, index := range []int{-1, 1, 99} {
			c, err := controller.Open(backend, index)
			assert.Nil(t, c)
			var unavailable *controller.DeviceUnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, index, unavailable.Index)
		}
		assert.Empty(t, backend.Opened, "no device may be acquired for a bad index")
	})

	t.Run("acquisition failure", func(t *testing.T) {
		backend := &padtest.FakeBackend{Devices: []*padtest.FakeDevice{nil}}
		_, err := controller.Open(backend, 0)
		var unavailable *controller.DeviceUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.ErrorContains(t, err, "device claimed by another process")
		assert.NotNil(t, errors.Unwrap(unavailable))
	})
}

func TestRawQueries(t *testing.T) {
	dev := &padtest.FakeDevice{
		DeviceName:  "wheel",
		ButtonCount: 12,
		AxisCount:   4,
		Held:        map[int]bool{3: true},
		Position:    map[int]float64{1: -0.5},
	}
	c, err := controller.Open(newBackend(dev), 0)
	require.NoError(t, err)

	assert.Equal(t, "wheel", c.Name())
	assert.Equal(t, 12, c.Buttons())
	assert.Equal(t, 4, c.Axes())
	assert.True(t, c.Button(3))
	assert.False(t, c.Button(0))
	assert.Equal(t, -0.5, c.Axis(1))
}

func TestButtonDispatch(t *testing.T) {
	t.Run("unmapped ids are silent", func(t *testing.T) {
		c := pad(t)
		assert.NotPanics(t, func() {
			c.PressButton(0)
			c.ReleaseButton(0)
			c.PressButton(14)
		})
	})

	t.Run("press only", func(t *testing.T) {
		c := pad(t)
		presses := 0
		c.MapButton(2, func() { presses++ }, nil)

		c.PressButton(2)
		c.PressButton(2)
		c.PressButton(2)
		assert.Equal(t, 3, presses, "no de-duplication of repeated presses")

		c.ReleaseButton(2)
		assert.Equal(t, 3, presses, "release must run the no-op, not the press command")
	})

	t.Run("rebinding replaces both slots", func(t *testing.T) {
		c := pad(t)
		var first, firstRelease, second int
		c.MapButton(5, func() { first++ }, func() { firstRelease++ })
		c.MapButton(5, func() { second++ }, nil)

		c.PressButton(5)
		c.ReleaseButton(5)
		assert.Equal(t, 0, first)
		assert.Equal(t, 0, firstRelease, "stale release command must not survive a rebind")
		assert.Equal(t, 1, second)
	})

	t.Run("binding needs no hardware button", func(t *testing.T) {
		c := pad(t)
		fired := false
		c.MapButton(200, func() { fired = true }, nil)
		c.PressButton(200)
		assert.True(t, fired)
	})
}

func TestAxisDispatch(t *testing.T) {
	c := pad(t)
	var positive, negative, release int
	c.MapAxis(1,
		func() { positive++ },
		func() { negative++ },
		func() { release++ },
	)

	tests := []struct {
		name                        string
		value                       float64
		positive, negative, release int
	}{
		{"positive", 5, 1, 0, 0},
		{"negative", -3, 1, 1, 0},
		{"zero is release", 0, 1, 1, 1},
		{"repeated release re-fires", 0, 1, 1, 2},
		{"tiny positive", 0.0001, 2, 1, 2},
		{"tiny negative", -0.0001, 2, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.MoveAxis(1, tt.value)
			assert.Equal(t, tt.positive, positive)
			assert.Equal(t, tt.negative, negative)
			assert.Equal(t, tt.release, release)
		})
	}

	t.Run("unmapped axis is silent", func(t *testing.T) {
		assert.NotPanics(t, func() { c.MoveAxis(7, 1) })
	})
}

func TestAxisPartialBinding(t *testing.T) {
	c := pad(t)
	moved := 0
	c.MapAxis(0, func() { moved++ }, nil, nil)

	c.MoveAxis(0, 1)
	c.MoveAxis(0, -1)
	c.MoveAxis(0, 0)
	assert.Equal(t, 1, moved, "unset slots must resolve to the no-op")
}

func TestDispatchDoesNotCatchPanics(t *testing.T) {
	c := pad(t)
	calls := 0
	c.MapButton(0, func() {
		calls++
		panic("faulty user command")
	}, nil)

	assert.PanicsWithValue(t, "faulty user command", func() { c.PressButton(0) })
	// bindings survive a throwing command untouched
	assert.PanicsWithValue(t, "faulty user command", func() { c.PressButton(0) })
	assert.Equal(t, 2, calls)
}

func TestClose(t *testing.T) {
	dev := &padtest.FakeDevice{}
	c, err := controller.Open(newBackend(dev), 0)
	require.NoError(t, err)

	require.NoError(t, c.Close())
	assert.Equal(t, 1, dev.Closed)
	require.NoError(t, c.Close())
	assert.Equal(t, 1, dev.Closed, "second close is a no-op")
}
