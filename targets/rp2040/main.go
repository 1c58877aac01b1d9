//go:build rp2040 || rp2350

package main

import (
	"co2sensor/core"
	"co2sensor/targets/rp2"
)

func main() {
	rp2.Init(core.LevelInfo)
	gpio := core.MustGPIO()

	led := core.NewActiveHighSignal(gpio, rp2.StatusLEDPin)
	rgb := core.NewRGBLed(
		core.NewActiveLowSignal(gpio, rp2.RedPin),
		core.NewActiveLowSignal(gpio, rp2.GreenPin),
		core.NewActiveLowSignal(gpio, rp2.BluePin),
	)

	temp, err := core.NewInternalTemperature(core.MustADC(), rp2.TempChannel, rp2.ADCRefMilliVolts)
	if err != nil {
		core.Fatal(err)
	}

	seq := core.NewSequencer(led, rgb, core.SleepDelayer{}, temp, core.DefaultLogger)
	seq.Run()
}
