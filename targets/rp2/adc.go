//go:build rp2040 || rp2350

package rp2

import (
	"co2sensor/core"
	"device/rp"
	"errors"
	"machine"
)

var (
	errUnsupportedADC = errors.New("adc: unsupported channel")
	errADCTimeout     = errors.New("adc: conversion timeout")
	errADCConversion  = errors.New("adc: conversion error")
)

// TempChannel is the ADC input wired to the on-chip temperature sensor.
const TempChannel core.ADCChannelID = 4

// ADCDriver implements core.ADCDriver for the internal temperature channel.
// External channels are not used by this firmware.
type ADCDriver struct{}

// NewADCDriver constructs the driver and powers up the ADC.
func NewADCDriver() *ADCDriver {
	machine.InitADC()
	return &ADCDriver{}
}

// ConfigureChannel enables the temperature sensor bias.
func (d *ADCDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if ch != TempChannel {
		return errUnsupportedADC
	}
	rp.ADC.CS.SetBits(rp.ADC_CS_TS_EN)
	return nil
}

// ReadRaw returns a raw 12-bit value (0-4095) from the temperature channel.
func (d *ADCDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	if ch != TempChannel {
		return 0, errUnsupportedADC
	}

	// Select ADC channel 4 (internal temperature sensor)
	rp.ADC.CS.ReplaceBits(
		uint32(ch)<<rp.ADC_CS_AINSEL_Pos,
		rp.ADC_CS_AINSEL_Msk,
		0,
	)

	// Start a single conversion
	rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)

	// A conversion takes 96 ADC clocks (2 µs at 48 MHz); bound the wait
	// so a dead peripheral becomes a fault instead of a hang.
	for i := 0; !rp.ADC.CS.HasBits(rp.ADC_CS_READY); i++ {
		if i > 100000 {
			return 0, errADCTimeout
		}
	}

	if rp.ADC.CS.HasBits(rp.ADC_CS_ERR) {
		return 0, errADCConversion
	}
	return core.ADCValue(rp.ADC.RESULT.Get() & core.ADCMax), nil
}
