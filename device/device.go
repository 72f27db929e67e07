// Package device defines the hardware access contract the controller
// package consumes, plus a registry of the backends that implement it.
package device

import (
	"fmt"
	"sort"
	"sync"
)

// Device is one opened physical input device. Implementations report the
// instantaneous state of its controls and perform no edge detection.
type Device interface {
	// Name returns the human-readable device name.
	Name() string
	// Buttons returns the number of digital buttons the device reports.
	Buttons() int
	// Axes returns the number of analog axes the device reports.
	Axes() int
	// Button reports whether the button with the given id is currently
	// held down.
	Button(id int) bool
	// Axis returns the current position of the given axis, normalised to
	// [-1, 1].
	Axis(id int) float64
	// Close releases the device.
	Close() error
}

// Backend enumerates and opens devices through one access method.
type Backend interface {
	// Count returns the number of devices currently present.
	Count() int
	// Open claims the device at the given index exclusively for the
	// caller.
	Open(index int) (Device, error)
}

var (
	mu       sync.RWMutex
	backends = make(map[string]Backend)
)

// Register makes a backend available under the given name. Backends call
// this from init; registering the same name twice panics.
func Register(name string, b Backend) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := backends[name]; ok {
		panic(fmt.Sprintf("device: backend %q registered twice", name))
	}
	backends[name] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("device: unknown backend %q", name)
	}
	return b, nil
}

// Names returns every registered backend name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
