// Output signals: on/off semantics independent of pin polarity.
package core

// Signal is a two-state output such as an LED or a relay.
//
// A Signal is either on or off, regardless of how that is expressed on the
// hardware. Some signals are on at a logic high and some at a logic low.
// Both operations are idempotent. A failed pin write never returns: it is
// reported through Fatal.
type Signal interface {
	// On turns the signal on.
	On()

	// Off turns the signal off.
	Off()
}

// Polarity selects which electrical level means "on".
type Polarity uint8

const (
	// ActiveHigh signals are on at a logic high and power up low (off).
	ActiveHigh Polarity = iota
	// ActiveLow signals are on at a logic low and power up high (off),
	// e.g. a common-anode LED sinking through the pin.
	ActiveLow
)

func (p Polarity) String() string {
	if p == ActiveLow {
		return "active-low"
	}
	return "active-high"
}

// onLevel returns the pin level for "on" under this polarity.
func (p Polarity) onLevel() bool {
	return p == ActiveHigh
}

// pinSignal is the shared body of both polarity adapters.
type pinSignal struct {
	driver GPIODriver
	pin    GPIOPin
}

func (s *pinSignal) set(level bool, op string) {
	if err := s.driver.SetPin(s.pin, level); err != nil {
		Fatal(&HardwareSignalFault{Pin: s.pin, Op: op, Err: err})
	}
}

// configure claims the pin and drives it to off before the signal is usable.
func (s *pinSignal) configure(p Polarity) {
	if err := s.driver.ConfigureOutput(s.pin, !p.onLevel()); err != nil {
		Fatal(&HardwareSignalFault{Pin: s.pin, Op: "configure", Err: err})
	}
}

// ActiveLowSignal is a Signal which is on when its pin is low.
type ActiveLowSignal struct {
	pinSignal
}

// NewActiveLowSignal takes ownership of pin and leaves it high (off).
func NewActiveLowSignal(d GPIODriver, pin GPIOPin) *ActiveLowSignal {
	s := &ActiveLowSignal{pinSignal{driver: d, pin: pin}}
	s.configure(ActiveLow)
	return s
}

// On drives the pin low.
func (s *ActiveLowSignal) On() { s.set(false, "on") }

// Off drives the pin high.
func (s *ActiveLowSignal) Off() { s.set(true, "off") }

// ActiveHighSignal is a Signal which is on when its pin is high.
type ActiveHighSignal struct {
	pinSignal
}

// NewActiveHighSignal takes ownership of pin and leaves it low (off).
func NewActiveHighSignal(d GPIODriver, pin GPIOPin) *ActiveHighSignal {
	s := &ActiveHighSignal{pinSignal{driver: d, pin: pin}}
	s.configure(ActiveHigh)
	return s
}

// On drives the pin high.
func (s *ActiveHighSignal) On() { s.set(true, "on") }

// Off drives the pin low.
func (s *ActiveHighSignal) Off() { s.set(false, "off") }

// NewSignal builds the adapter matching polarity.
func NewSignal(d GPIODriver, pin GPIOPin, p Polarity) Signal {
	if p == ActiveLow {
		return NewActiveLowSignal(d, pin)
	}
	return NewActiveHighSignal(d, pin)
}
