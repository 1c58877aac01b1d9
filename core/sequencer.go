package core

import "tinygo.org/x/drivers"

// Action is one step of the indicator sequence.
type Action uint8

const (
	ActSettle Action = iota // S0, run once at boot
	ActPulseOn
	ActPulseOff
	ActRed
	ActGreen
	ActBlue
	ActRGBOff
	ActWait // no output change, delay only
	ActSampleTemp
)

var actionNames = [...]string{"settle", "pulse-on", "pulse-off", "red", "green", "blue", "rgb-off", "wait", "sample-temp"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "action" + itoa(int(a))
}

// Step is an action followed by a blocking delay.
type Step struct {
	Action  Action
	DelayMs uint32
}

// SettleStep runs once before the first cycle.
var SettleStep = Step{ActSettle, 1000}

// CycleSteps is the fixed, repeating sequence (S1..S11).
// The 500 ms wait before sampling is its own step after the last rgb-off.
var CycleSteps = [...]Step{
	{ActPulseOn, 100},
	{ActPulseOff, 100},
	{ActPulseOn, 100},
	{ActPulseOff, 700},
	{ActRed, 100},
	{ActRGBOff, 100},
	{ActGreen, 100},
	{ActRGBOff, 100},
	{ActBlue, 100},
	{ActRGBOff, 100},
	{ActWait, 500},
	{ActSampleTemp, 0},
}

// Sequencer drives the status LED and the RGB LED through the fixed
// pattern and reports the chip temperature once per cycle.
type Sequencer struct {
	led    Signal
	rgb    *RGBLed
	delay  Delayer
	sensor TemperatureSensor
	log    Logger
}

// NewSequencer wires the sequencer to its collaborators.
// A nil log falls back to DefaultLogger.
func NewSequencer(led Signal, rgb *RGBLed, delay Delayer, sensor TemperatureSensor, log Logger) *Sequencer {
	if log == nil {
		log = DefaultLogger
	}
	return &Sequencer{
		led:    led,
		rgb:    rgb,
		delay:  delay,
		sensor: sensor,
		log:    log,
	}
}

// Start greets and lets the board settle.
func (s *Sequencer) Start() {
	s.log.Info("Hello, world!")
	s.step(SettleStep)
}

// RunCycle runs S1..S11 once.
func (s *Sequencer) RunCycle() {
	for _, st := range CycleSteps {
		s.step(st)
	}
}

// Run starts the sequencer and cycles forever.
func (s *Sequencer) Run() {
	s.Start()
	for {
		s.RunCycle()
	}
}

func (s *Sequencer) step(st Step) {
	switch st.Action {
	case ActSettle, ActWait:
	case ActPulseOn:
		s.led.On()
	case ActPulseOff:
		s.led.Off()
	case ActRed:
		s.rgb.Red()
	case ActGreen:
		s.rgb.Green()
	case ActBlue:
		s.rgb.Blue()
	case ActRGBOff:
		s.rgb.Off()
	case ActSampleTemp:
		s.sampleTemperature()
	}
	if st.DelayMs > 0 {
		s.delay.DelayMs(st.DelayMs)
	}
}

func (s *Sequencer) sampleTemperature() {
	if err := s.sensor.Update(drivers.Temperature); err != nil {
		Fatal(err)
	}
	celsius := MilliToCelsius(s.sensor.Temperature())
	s.log.Info(ftoa(celsius, 2) + " °C")
}
