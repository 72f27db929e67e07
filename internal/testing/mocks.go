// Package testing provides shared fakes for the hardware collaborator
// interfaces, so tests can script device state without hardware.
package testing

import (
	"errors"

	"github.com/ploiu/padmap/device"
)

// FakeDevice is an in-memory device.Device with scriptable control state.
type FakeDevice struct {
	DeviceName  string
	ButtonCount int
	AxisCount   int
	Held        map[int]bool
	Position    map[int]float64
	Closed      int
}

func (d *FakeDevice) Name() string        { return d.DeviceName }
func (d *FakeDevice) Buttons() int        { return d.ButtonCount }
func (d *FakeDevice) Axes() int           { return d.AxisCount }
func (d *FakeDevice) Button(id int) bool  { return d.Held[id] }
func (d *FakeDevice) Axis(id int) float64 { return d.Position[id] }

func (d *FakeDevice) Close() error {
	d.Closed++
	return nil
}

// FakeBackend serves a fixed slice of devices. A nil entry simulates a
// device that is present but cannot be acquired.
type FakeBackend struct {
	Devices []*FakeDevice
	Opened  []int
}

func (b *FakeBackend) Count() int { return len(b.Devices) }

func (b *FakeBackend) Open(index int) (device.Device, error) {
	d := b.Devices[index]
	if d == nil {
		return nil, errors.New("device claimed by another process")
	}
	b.Opened = append(b.Opened, index)
	return d, nil
}
