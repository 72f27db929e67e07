package controller

import "fmt"

// DeviceUnavailableError reports a failed device acquisition at Open time.
// It is the only error this package produces; every later operation is
// total over its input space and never fails for unmapped ids.
type DeviceUnavailableError struct {
	// Index is the device index that could not be acquired.
	Index int
	// Err is the underlying cause, if the backend reported one.
	Err error
}

func (e *DeviceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("device %d unavailable: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("device %d unavailable", e.Index)
}

func (e *DeviceUnavailableError) Unwrap() error { return e.Err }
