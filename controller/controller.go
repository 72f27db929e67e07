// Package controller maps raw gamepad readings onto user-supplied commands.
//
// A Controller owns one physical device and two binding tables: buttons map
// to a press/release command pair, axes to a positive/negative/release
// command triple. The caller's polling loop detects state changes and feeds
// them to the dispatch methods; the controller only routes an
// already-classified event to the command bound to it.
package controller

import (
	"fmt"

	"github.com/ploiu/padmap/device"
)

// Command is a zero-argument action bound to a button or axis event.
type Command func()

// noop is the shared default substituted for every unset binding slot, so
// dispatch is always a single unconditional call.
var noop Command = func() {}

type buttonBinding struct {
	press   Command
	release Command
}

type axisBinding struct {
	positive Command
	negative Command
	release  Command
}

// Controller routes classified input events from one device to bound
// commands.
//
// A Controller performs no internal locking. Callers that map or dispatch
// from more than one goroutine must serialise access themselves.
type Controller struct {
	dev     device.Device
	index   int
	buttons map[int]buttonBinding
	axes    map[int]axisBinding
}

// Open claims the device at index on the given backend exclusively. It
// fails with a *DeviceUnavailableError when the index is outside the range
// of devices the backend reports, or when the backend cannot acquire the
// device (missing, already claimed, driver error). On failure no device
// handle is left allocated.
func Open(backend device.Backend, index int) (*Controller, error) {
	if n := backend.Count(); index < 0 || index >= n {
		return nil, &DeviceUnavailableError{
			Index: index,
			Err:   fmt.Errorf("index out of range: %d device(s) present", n),
		}
	}
	dev, err := backend.Open(index)
	if err != nil {
		return nil, &DeviceUnavailableError{Index: index, Err: err}
	}
	return &Controller{
		dev:     dev,
		index:   index,
		buttons: make(map[int]buttonBinding),
		axes:    make(map[int]axisBinding),
	}, nil
}

// Index returns the device index this controller was opened with.
func (c *Controller) Index() int { return c.index }

// Name returns the device's name as reported by the backend.
func (c *Controller) Name() string { return c.dev.Name() }

// Buttons returns the number of digital buttons the device reports.
func (c *Controller) Buttons() int { return c.dev.Buttons() }

// Axes returns the number of analog axes the device reports.
func (c *Controller) Axes() int { return c.dev.Axes() }

// Button returns the current raw state of the given button, straight from
// the device. Ids the device does not recognise yield whatever the backend
// reports for them.
func (c *Controller) Button(id int) bool { return c.dev.Button(id) }

// Axis returns the current raw position of the given axis, straight from
// the device.
func (c *Controller) Axis(id int) float64 { return c.dev.Axis(id) }

// MapButton binds commands to the press and release of button id. Any
// existing binding for the id is replaced wholesale, never merged. A nil
// command leaves that slot bound to a shared no-op. The id does not have to
// exist on the hardware; binding and hardware validity are independent.
func (c *Controller) MapButton(id int, press, release Command) {
	if press == nil {
		press = noop
	}
	if release == nil {
		release = noop
	}
	c.buttons[id] = buttonBinding{press: press, release: release}
}

// MapAxis binds commands to the positive, negative, and released states of
// axis id, with the same full-replace and nil-to-no-op semantics as
// MapButton.
func (c *Controller) MapAxis(id int, positive, negative, release Command) {
	if positive == nil {
		positive = noop
	}
	if negative == nil {
		negative = noop
	}
	if release == nil {
		release = noop
	}
	c.axes[id] = axisBinding{positive: positive, negative: negative, release: release}
}

// PressButton runs the press command bound to button id. Buttons with no
// binding are silently ignored. Errors raised by the command itself are not
// intercepted; the binding tables are never mutated by dispatch.
func (c *Controller) PressButton(id int) {
	if b, ok := c.buttons[id]; ok {
		b.press()
	}
}

// ReleaseButton runs the release command bound to button id. Buttons with
// no binding are silently ignored.
func (c *Controller) ReleaseButton(id int) {
	if b, ok := c.buttons[id]; ok {
		b.release()
	}
}

// MoveAxis classifies value and runs the matching command bound to axis id:
// a negative value runs the negative command, zero the release command, and
// a positive value the positive command. Axes with no binding are silently
// ignored. Exactly one command runs per call; the controller keeps no
// previous value, so repeated calls with the same sign re-run the same
// command each time. Edge detection is the polling loop's job.
func (c *Controller) MoveAxis(id int, value float64) {
	a, ok := c.axes[id]
	if !ok {
		return
	}
	switch {
	case value < 0:
		a.negative()
	case value == 0:
		a.release()
	default:
		a.positive()
	}
}

// Close releases the underlying device. Further raw queries are invalid
// after Close; calling Close again is a no-op.
func (c *Controller) Close() error {
	if c.dev == nil {
		return nil
	}
	err := c.dev.Close()
	c.dev = nil
	return err
}
