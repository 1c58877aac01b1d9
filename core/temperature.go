package core

import "tinygo.org/x/drivers"

// TemperatureSensor is a drivers.Sensor that reports temperature in
// milli-degrees Celsius, following the tinygo drivers convention.
type TemperatureSensor interface {
	drivers.Sensor
	Temperature() int32
}

// InternalTemperature reads the on-chip temperature sensor through an ADC
// channel. RP2040 datasheet, section 4.9.5:
//
//	T = 27 - (V - 0.706) / 0.001721
type InternalTemperature struct {
	adc           ADCDriver
	channel       ADCChannelID
	refMilliVolts uint32
	milliCelsius  int32
}

// NewInternalTemperature configures ch on adc and returns the sensor.
// refMilliVolts is the ADC reference voltage (3300 on a Pico).
func NewInternalTemperature(adc ADCDriver, ch ADCChannelID, refMilliVolts uint32) (*InternalTemperature, error) {
	if err := adc.ConfigureChannel(ch); err != nil {
		return nil, err
	}
	return &InternalTemperature{
		adc:           adc,
		channel:       ch,
		refMilliVolts: refMilliVolts,
	}, nil
}

// Update samples the sensor when which includes drivers.Temperature.
func (t *InternalTemperature) Update(which drivers.Measurement) error {
	if which&drivers.Temperature == 0 {
		return nil
	}
	raw, err := t.adc.ReadRaw(t.channel)
	if err != nil {
		return err
	}
	t.milliCelsius = RawToMilliCelsius(raw, t.refMilliVolts)
	return nil
}

// Temperature returns the last sample in milli-degrees Celsius.
func (t *InternalTemperature) Temperature() int32 {
	return t.milliCelsius
}

// RawToMilliCelsius converts a raw 12-bit temperature-channel sample.
func RawToMilliCelsius(raw ADCValue, refMilliVolts uint32) int32 {
	// Microvolts keep the arithmetic in integers; 1.721 mV/°C slope.
	microVolts := int64(raw) * int64(refMilliVolts) * 1000 / (ADCMax + 1)
	return int32(27000 - (microVolts-706000)*1000/1721)
}

// MilliToCelsius converts a drivers-style milli-degree reading to Celsius.
func MilliToCelsius(milli int32) float32 {
	return float32(milli) / 1000
}
