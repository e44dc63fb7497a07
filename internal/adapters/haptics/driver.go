package haptics

import (
	"io"
	"os"
	"time"

	"fitick/internal/ports"
)

// Driver implements ports.HapticDriver with terminal bell pulses: one bell
// for light, two for medium, three for heavy. It is the desktop stand-in
// for device vibration.
type Driver struct {
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.HapticDriver = (*Driver)(nil)

// NewDriver creates a haptic driver pulsing the local terminal
func NewDriver() *Driver {
	return &Driver{out: os.Stdout}
}

// NewDriverForWriter creates a haptic driver pulsing an arbitrary terminal
// stream, such as an SSH session
func NewDriverForWriter(out io.Writer) *Driver {
	return &Driver{out: out}
}

// Pulse fires a bell sequence for the given intensity
func (d *Driver) Pulse(intensity ports.HapticIntensity) error {
	pulses := 1
	switch intensity {
	case ports.HapticMedium:
		pulses = 2
	case ports.HapticHeavy:
		pulses = 3
	}

	for i := 0; i < pulses; i++ {
		if i > 0 {
			time.Sleep(120 * time.Millisecond)
		}
		if _, err := io.WriteString(d.out, "\a"); err != nil {
			return err
		}
	}
	return nil
}
