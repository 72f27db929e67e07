// Package sdl provides gamepad access through SDL2's joystick subsystem.
// Ids and numbering match what SDL reports for the device, which is also
// the numbering most other SDL-based software (including pygame) sees.
// Without cgo the package compiles but registers no backend.
package sdl
