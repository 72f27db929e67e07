package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ploiu/padmap/device"
)

// List enumerates the devices each backend can see.
type List struct {
	Backend string `help:"Restrict to one device backend" env:"PADMAP_BACKEND"`
}

// Run is called by kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	names := device.Names()
	if l.Backend != "" {
		names = []string{l.Backend}
	}
	for _, name := range names {
		backend, err := device.Lookup(name)
		if err != nil {
			return err
		}
		count := backend.Count()
		logger.Debug("enumerated backend", "backend", name, "devices", count)
		if count == 0 {
			fmt.Printf("%s: no devices\n", name)
			continue
		}
		for i := 0; i < count; i++ {
			dev, err := backend.Open(i)
			if err != nil {
				logger.Warn("device not readable", "backend", name, "index", i, "error", err)
				continue
			}
			fmt.Printf("%s/%d: %s (%d buttons, %d axes)\n",
				name, i, dev.Name(), dev.Buttons(), dev.Axes())
			_ = dev.Close()
		}
	}
	return nil
}
