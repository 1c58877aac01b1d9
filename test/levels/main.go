//go:build rp2040 || rp2350

// Emits one log event per level and exits, to check the log path end to end.
package main

import (
	"co2sensor/core"
	"co2sensor/targets/rp2"
)

func main() {
	rp2.Init(core.LevelTrace)
	log := core.DefaultLogger

	log.Info("info")
	log.Trace("trace")
	log.Warn("warn")
	log.Debug("debug")
	log.Error("error")

	core.Exit(0)
}
