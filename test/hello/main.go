//go:build rp2040 || rp2350

// Minimal bring-up firmware: blink the on-board LED once a second.
package main

import (
	"co2sensor/core"
	"co2sensor/targets/rp2"
)

func main() {
	rp2.Init(core.LevelInfo)
	led := core.NewActiveHighSignal(core.MustGPIO(), rp2.StatusLEDPin)
	delay := core.SleepDelayer{}

	core.DefaultLogger.Info("Hello, world!")

	for {
		led.On()
		delay.DelayMs(1000)
		led.Off()
		delay.DelayMs(1000)
	}
}
