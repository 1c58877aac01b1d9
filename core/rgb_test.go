package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	redPin   GPIOPin = 3
	greenPin GPIOPin = 4
	bluePin  GPIOPin = 28
)

// rgbState is the logical on/off state of the three channels.
type rgbState struct{ red, green, blue bool }

func (s rgbState) lit() int {
	n := 0
	for _, on := range []bool{s.red, s.green, s.blue} {
		if on {
			n++
		}
	}
	return n
}

func newTestRGB(p Polarity) (*RGBLed, *mockGPIODriver) {
	d := newMockGPIODriver()
	rgb := NewRGBLed(
		NewSignal(d, redPin, p),
		NewSignal(d, greenPin, p),
		NewSignal(d, bluePin, p),
	)
	return rgb, d
}

func logicalState(d *mockGPIODriver, p Polarity) rgbState {
	on := p.onLevel()
	return rgbState{
		red:   d.pins[redPin] == on,
		green: d.pins[greenPin] == on,
		blue:  d.pins[bluePin] == on,
	}
}

var rgbOps = []struct {
	name string
	call func(*RGBLed)
	want rgbState
}{
	{"off", (*RGBLed).Off, rgbState{}},
	{"red", (*RGBLed).Red, rgbState{red: true}},
	{"green", (*RGBLed).Green, rgbState{green: true}},
	{"blue", (*RGBLed).Blue, rgbState{blue: true}},
}

// opSequences enumerates every sequence of rgbOps indices up to maxLen.
func opSequences(maxLen int) [][]int {
	seqs := [][]int{{}}
	frontier := [][]int{{}}
	for n := 0; n < maxLen; n++ {
		var next [][]int
		for _, s := range frontier {
			for i := range rgbOps {
				next = append(next, append(append([]int{}, s...), i))
			}
		}
		seqs = append(seqs, next...)
		frontier = next
	}
	return seqs
}

func TestRGBAtMostOneLit(t *testing.T) {
	for _, p := range []Polarity{ActiveLow, ActiveHigh} {
		for _, seq := range opSequences(4) {
			rgb, d := newTestRGB(p)

			// Check after every single pin write, not only between calls.
			d.onWrite = func() {
				require.LessOrEqual(t, logicalState(d, p).lit(), 1, "%s sequence %v", p, seq)
			}

			for _, i := range seq {
				rgbOps[i].call(rgb)
				require.Equal(t, rgbOps[i].want, logicalState(d, p), "%s after %s in %v", p, rgbOps[i].name, seq)
			}
		}
	}
}

func TestRGBOffThenColorConverges(t *testing.T) {
	for _, prior := range rgbOps {
		for _, color := range rgbOps[1:] {
			rgb, d := newTestRGB(ActiveLow)
			prior.call(rgb)
			rgb.Off()
			color.call(rgb)
			assert.Equal(t, color.want, logicalState(d, ActiveLow), "%s, off, %s", prior.name, color.name)
		}
	}
}

func TestRGBRedGreenOffTrace(t *testing.T) {
	rgb, d := newTestRGB(ActiveLow)
	require.Equal(t, rgbState{}, logicalState(d, ActiveLow))

	var trace []rgbState
	for _, call := range []func(){rgb.Red, rgb.Green, rgb.Off} {
		call()
		trace = append(trace, logicalState(d, ActiveLow))
	}

	assert.Equal(t, []rgbState{
		{red: true},
		{green: true},
		{},
	}, trace)
}

func TestRGBTurnsOthersOffFirst(t *testing.T) {
	rgb, d := newTestRGB(ActiveHigh)
	rgb.Red()

	var order []GPIOPin
	for _, pin := range []GPIOPin{redPin, greenPin, bluePin} {
		d.trace[pin] = nil
	}
	d.onWrite = func() {
		for _, pin := range []GPIOPin{redPin, greenPin, bluePin} {
			if len(d.trace[pin]) > 0 && !contains(order, pin) {
				order = append(order, pin)
			}
		}
	}

	rgb.Blue()
	require.Len(t, order, 3)
	assert.Equal(t, bluePin, order[2], "the lit channel is written last")
}

func contains(pins []GPIOPin, pin GPIOPin) bool {
	for _, p := range pins {
		if p == pin {
			return true
		}
	}
	return false
}
