package core

import "errors"

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// ErrPinInUse is returned when a pin is configured twice.
// Every output line has exactly one owner for the lifetime of the firmware.
var ErrPinInUse = errors.New("gpio: pin already in use")

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a push-pull digital output,
	// driving it to initial (true=high) as part of the configuration.
	// Returns ErrPinInUse if the pin was already configured.
	ConfigureOutput(pin GPIOPin, initial bool) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
