//go:build linux

package joydev

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ploiu/padmap/device"
)

// joystick ioctl requests, from linux/joystick.h.
const (
	jsiocgName    = 0x80006a13 + (128 << 16) // JSIOCGNAME(128)
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
)

// event types, from linux/joystick.h. The init bit is or'd onto events that
// replay the device's state right after open.
const (
	eventButton = 0x01
	eventAxis   = 0x02
	eventInit   = 0x80
)

func init() {
	device.Register("joydev", backend{})
}

type backend struct{}

func (backend) Count() int { return len(devicePaths()) }

func (backend) Open(index int) (device.Device, error) {
	paths := devicePaths()
	if index < 0 || index >= len(paths) {
		return nil, fmt.Errorf("joydev: no device at index %d", index)
	}
	return open(paths[index])
}

func devicePaths() []string {
	paths, _ := filepath.Glob("/dev/input/js*")
	sort.Strings(paths)
	return paths
}

// event mirrors struct js_event from linux/joystick.h.
type event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// joystick reads kernel joystick events on a background goroutine into a
// state table the Button and Axis queries consult. The kernel replays the
// full device state as init events on open, so the table is primed before
// any real input arrives.
type joystick struct {
	file    *os.File
	name    string
	buttons int
	axes    int

	mu      sync.Mutex
	pressed map[int]bool
	pos     map[int]float64
}

func open(path string) (*joystick, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("joydev: %w", err)
	}
	j := &joystick{
		file:    f,
		pressed: make(map[int]bool),
		pos:     make(map[int]float64),
	}

	var name [128]byte
	var count uint8
	for _, q := range []struct {
		req  uintptr
		dest unsafe.Pointer
		set  func()
	}{
		{jsiocgName, unsafe.Pointer(&name[0]), func() { j.name = string(bytes.TrimRight(name[:], "\x00")) }},
		{jsiocgButtons, unsafe.Pointer(&count), func() { j.buttons = int(count) }},
		{jsiocgAxes, unsafe.Pointer(&count), func() { j.axes = int(count) }},
	} {
		if err := ioctl(f, q.req, q.dest); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("joydev: query %s: %w", path, err)
		}
		q.set()
	}

	go j.read()
	return j, nil
}

func (j *joystick) read() {
	for {
		var e event
		if binary.Read(j.file, binary.LittleEndian, &e) != nil {
			return
		}
		j.apply(e)
	}
}

func (j *joystick) apply(e event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	switch e.Type &^ eventInit {
	case eventButton:
		j.pressed[int(e.Number)] = e.Value != 0
	case eventAxis:
		j.pos[int(e.Number)] = normalize(e.Value)
	}
}

// normalize maps the kernel's int16 axis range onto [-1, 1]. The range is
// asymmetric (-32768..32767), so the two halves scale independently.
func normalize(v int16) float64 {
	if v < 0 {
		return float64(v) / 32768
	}
	return float64(v) / 32767
}

func (j *joystick) Name() string { return j.name }
func (j *joystick) Buttons() int { return j.buttons }
func (j *joystick) Axes() int    { return j.axes }

func (j *joystick) Button(id int) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pressed[id]
}

func (j *joystick) Axis(id int) float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pos[id]
}

// Close closes the device file. That interrupts the reader goroutine's
// pending read, so the goroutine exits with the handle.
func (j *joystick) Close() error {
	return j.file.Close()
}

// ioctl issues the request through SyscallConn rather than Fd, which would
// switch the file to blocking mode and deregister it from the runtime
// poller. The reader goroutine parks in a read on this file; only a
// poller-registered fd lets Close interrupt that read.
func ioctl(f *os.File, req uintptr, arg unsafe.Pointer) error {
	conn, err := f.SyscallConn()
	if err != nil {
		return err
	}
	var errno syscall.Errno
	if cerr := conn.Control(func(fd uintptr) {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	}); cerr != nil {
		return cerr
	}
	if errno != 0 {
		return errno
	}
	return nil
}
