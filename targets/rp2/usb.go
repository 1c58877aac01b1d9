//go:build rp2040 || rp2350

package rp2

import (
	"machine"
)

// InitUSB initializes USB CDC used as the log transport
func InitUSB() {
	// machine.Serial is USB CDC on RP2040; descriptors come from TinyGo's runtime
	_ = machine.Serial.Configure(machine.UARTConfig{})
}

// USBWriteLine writes one log line to USB.
// Errors are dropped: logging never stalls the firmware.
func USBWriteLine(s string) {
	_, _ = machine.Serial.Write([]byte(s))
	_, _ = machine.Serial.Write([]byte("\r\n"))
}
