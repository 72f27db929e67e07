// Package registry pulls in every compiled-in device backend.
package registry

import (
	_ "github.com/ploiu/padmap/device/joydev" // Register Linux joystick backend
	_ "github.com/ploiu/padmap/device/sdl"    // Register SDL2 joystick backend
)
