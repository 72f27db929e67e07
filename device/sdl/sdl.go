//go:build cgo

package sdl

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ploiu/padmap/device"
)

func init() {
	device.Register("sdl", &backend{})
}

type backend struct {
	once sync.Once
	err  error
}

// initJoysticks brings up the joystick subsystem on first use. Enumerating
// before SDL is initialised reports zero devices rather than failing.
func (b *backend) initJoysticks() error {
	b.once.Do(func() {
		if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
			b.err = fmt.Errorf("sdl: init joystick subsystem: %w", err)
		}
	})
	return b.err
}

func (b *backend) Count() int {
	if b.initJoysticks() != nil {
		return 0
	}
	return sdl.NumJoysticks()
}

func (b *backend) Open(index int) (device.Device, error) {
	if err := b.initJoysticks(); err != nil {
		return nil, err
	}
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		return nil, fmt.Errorf("sdl: open joystick %d: %v", index, sdl.GetError())
	}
	return &joystick{joy: joy}, nil
}

type joystick struct {
	joy *sdl.Joystick
}

func (j *joystick) Name() string { return j.joy.Name() }
func (j *joystick) Buttons() int { return j.joy.NumButtons() }
func (j *joystick) Axes() int    { return j.joy.NumAxes() }

func (j *joystick) Button(id int) bool {
	// we poll outside SDL's event loop, so refresh joystick state manually
	sdl.JoystickUpdate()
	return j.joy.Button(id) != 0
}

func (j *joystick) Axis(id int) float64 {
	sdl.JoystickUpdate()
	return normalize(j.joy.Axis(id))
}

// normalize maps SDL's int16 axis range onto [-1, 1]. The range is
// asymmetric (-32768..32767), so the two halves scale independently.
func normalize(v int16) float64 {
	if v < 0 {
		return float64(v) / 32768
	}
	return float64(v) / 32767
}

func (j *joystick) Close() error {
	j.joy.Close()
	return nil
}
