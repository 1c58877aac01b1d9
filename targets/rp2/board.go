//go:build rp2040 || rp2350

// Package rp2 wires the core firmware to RP2040/RP2350 hardware.
package rp2

import (
	"co2sensor/core"
	"machine"
	"time"
)

// Pin assignment. The status LED is the on-board LED (active-high); the
// tri-color LED is common-anode, so its channels are active-low.
const (
	StatusLEDPin = core.GPIOPin(machine.LED)
	RedPin       = core.GPIOPin(machine.GPIO13)
	GreenPin     = core.GPIOPin(machine.GPIO14)
	BluePin      = core.GPIOPin(machine.GPIO15)

	// ADCRefMilliVolts is the Pico's ADC reference.
	ADCRefMilliVolts = 3300
)

// Init brings up the log transport, the fault and exit handlers and the
// HAL drivers, and registers them with core. Firmwares take their
// drivers from core.MustGPIO and core.MustADC afterwards.
func Init(level core.LogLevel) {
	InitUSB()
	core.SetLogWriter(USBWriteLine)
	core.SetLogLevel(level)
	core.SetFaultHandler(func(error) { halt() })
	core.SetExitHandler(func(int) { halt() })

	core.SetGPIODriver(NewGPIODriver())
	core.SetADCDriver(NewADCDriver())
}

// halt parks the firmware; the host sees the PANIC/EXIT line and detaches.
func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
