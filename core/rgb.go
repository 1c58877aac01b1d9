package core

// RGBLed drives a tri-color LED built from three independent signals.
// At most one channel is lit after any method returns: every method turns
// the other channels off before it turns its own channel on, so a color
// change never shows two channels at once.
type RGBLed struct {
	red   Signal
	green Signal
	blue  Signal
}

// NewRGBLed takes ownership of three distinct signals.
// The caller must not drive them afterwards.
func NewRGBLed(red, green, blue Signal) *RGBLed {
	return &RGBLed{red: red, green: green, blue: blue}
}

// Off turns all three channels off.
func (l *RGBLed) Off() {
	l.red.Off()
	l.green.Off()
	l.blue.Off()
}

// Red lights only the red channel.
func (l *RGBLed) Red() {
	l.green.Off()
	l.blue.Off()
	l.red.On()
}

// Green lights only the green channel.
func (l *RGBLed) Green() {
	l.red.Off()
	l.blue.Off()
	l.green.On()
}

// Blue lights only the blue channel.
func (l *RGBLed) Blue() {
	l.red.Off()
	l.green.Off()
	l.blue.On()
}
