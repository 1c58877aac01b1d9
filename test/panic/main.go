//go:build rp2040 || rp2350

// Raises a fatal fault right after boot, to check the abort path.
package main

import (
	"errors"

	"co2sensor/core"
	"co2sensor/targets/rp2"
)

func main() {
	rp2.Init(core.LevelInfo)
	core.DefaultLogger.Info("main")

	core.Fatal(errors.New("explicit panic"))
}
