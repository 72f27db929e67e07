// Package joydev provides gamepad access through the Linux joystick
// interface (/dev/input/js*). On other platforms the package compiles but
// registers no backend.
package joydev
