//go:build rp2040 || rp2350

package rp2

import (
	"co2sensor/core"
	"errors"
	"machine"
)

var errPinNotConfigured = errors.New("gpio: pin not configured")

// GPIODriver implements core.GPIODriver for RP2040/RP2350
type GPIODriver struct {
	// Track configured pins; each pin has a single owner
	configuredPins map[core.GPIOPin]machine.Pin
}

// NewGPIODriver creates a new RP2 GPIO driver
func NewGPIODriver() *GPIODriver {
	return &GPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a push-pull output and drives it to initial
func (d *GPIODriver) ConfigureOutput(pin core.GPIOPin, initial bool) error {
	if _, exists := d.configuredPins[pin]; exists {
		return core.ErrPinInUse
	}

	// RP2 pins map directly to GPIO numbers
	machinePin := machine.Pin(pin)

	// Load the SIO output latch before enabling the driver, otherwise the
	// pin briefly drives its reset level (low) and active-low LEDs glow.
	machinePin.Set(initial)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	d.configuredPins[pin] = machinePin
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *GPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return errPinNotConfigured
	}

	machinePin.Set(value)
	return nil
}
