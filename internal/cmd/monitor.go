package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/ploiu/padmap/controller"
	"github.com/ploiu/padmap/device"
	"github.com/ploiu/padmap/internal/log"
	"github.com/ploiu/padmap/profile"
)

// Monitor is the driving loop: it polls one device, detects button edges
// and axis sign changes, and dispatches them through a controller. Without
// a profile every control is bound to a logging action.
type Monitor struct {
	Index    int           `arg:"" optional:"" default:"0" help:"Device index"`
	Backend  string        `help:"Device backend" default:"sdl" env:"PADMAP_BACKEND"`
	Profile  string        `help:"Bindings profile to apply (.toml/.yaml/.json)" env:"PADMAP_PROFILE"`
	Interval time.Duration `help:"Polling interval" default:"8ms"`
}

// Run is called by kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger, trace log.TraceLogger) error {
	backend, err := device.Lookup(m.Backend)
	if err != nil {
		return err
	}
	pad, err := controller.Open(backend, m.Index)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	defer pad.Close()

	if m.Profile != "" {
		prof, err := profile.Load(m.Profile)
		if err != nil {
			return err
		}
		if err := prof.Apply(pad, loggingActions(prof, logger)); err != nil {
			return err
		}
	} else {
		bindAllControls(pad, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	quit := watchKeyboard(ctx)

	logger.Info("monitoring device", "backend", m.Backend, "index", pad.Index(),
		"name", pad.Name(), "buttons", pad.Buttons(), "axes", pad.Axes())

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	prevHeld := make([]bool, pad.Buttons())
	prevSign := make([]int, pad.Axes())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case <-ticker.C:
		}
		for id := range prevHeld {
			held := pad.Button(id)
			if held == prevHeld[id] {
				continue
			}
			prevHeld[id] = held
			if held {
				trace.Sample("button", id, 1)
				pad.PressButton(id)
			} else {
				trace.Sample("button", id, 0)
				pad.ReleaseButton(id)
			}
		}
		for id := range prevSign {
			value := pad.Axis(id)
			if sign(value) == prevSign[id] {
				continue
			}
			prevSign[id] = sign(value)
			trace.Sample("axis", id, value)
			pad.MoveAxis(id, value)
		}
	}
}

// sign classifies an axis value the same way the controller dispatches it,
// so the loop only re-dispatches when the classification changes.
func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// bindAllControls maps every control the device reports to an action that
// logs the event.
func bindAllControls(pad *controller.Controller, logger *slog.Logger) {
	for id := 0; id < pad.Buttons(); id++ {
		pad.MapButton(id,
			func() { logger.Info("button pressed", "id", id) },
			func() { logger.Info("button released", "id", id) },
		)
	}
	for id := 0; id < pad.Axes(); id++ {
		pad.MapAxis(id,
			func() { logger.Info("axis moved", "id", id, "direction", "positive") },
			func() { logger.Info("axis moved", "id", id, "direction", "negative") },
			func() { logger.Info("axis released", "id", id) },
		)
	}
}

// loggingActions builds a command table covering every action the profile
// names; each command logs the action name when it fires.
func loggingActions(p *profile.Profile, logger *slog.Logger) map[string]controller.Command {
	actions := make(map[string]controller.Command)
	for _, name := range p.ActionNames() {
		actions[name] = func() { logger.Info("action fired", "action", name) }
	}
	return actions
}

// watchKeyboard returns a channel that closes when 'q' is pressed. When
// stdin is not a terminal, or raw mode cannot be entered, the channel never
// closes and only signals stop the monitor.
func watchKeyboard(ctx context.Context) <-chan struct{} {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return make(chan struct{})
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return make(chan struct{})
	}
	go func() {
		<-ctx.Done()
		// a terminal fd is pollable, so expiring the deadline unblocks
		// the pending Read and the key loop exits with the monitor
		_ = os.Stdin.SetReadDeadline(time.Now())
		_ = term.Restore(fd, state)
	}()
	return watchQuitKeys(ctx, os.Stdin, func() { _ = term.Restore(fd, state) })
}

// watchQuitKeys reads single bytes from r and closes the returned channel
// on a quit key. The loop ends when the context is cancelled or reading
// fails; done always runs on the way out.
func watchQuitKeys(ctx context.Context, r io.Reader, done func()) <-chan struct{} {
	quit := make(chan struct{})
	go func() {
		defer done()
		buf := make([]byte, 1)
		for {
			if _, err := r.Read(buf); err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			// 0x03 is Ctrl-C, which raw mode stops delivering as SIGINT
			if buf[0] == 'q' || buf[0] == 0x03 {
				close(quit)
				return
			}
		}
	}()
	return quit
}
