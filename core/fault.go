package core

// HardwareSignalFault reports a pin write that did not succeed.
// It is the only error kind the signal layer knows about and is never
// recovered: it always ends up in Fatal.
type HardwareSignalFault struct {
	Pin GPIOPin
	Op  string // "configure", "on" or "off"
	Err error
}

func (f *HardwareSignalFault) Error() string {
	msg := "hardware signal fault: pin " + utoa(uint32(f.Pin)) + " " + f.Op
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *HardwareSignalFault) Unwrap() error {
	return f.Err
}

var (
	// faultHandler halts the firmware. Targets replace it with something
	// that parks the CPU or resets the board.
	faultHandler = func(err error) { panic(err) }

	// exitHandler ends a demo firmware with a status.
	exitHandler func(status int)
)

// SetFaultHandler sets the platform handler invoked by Fatal.
// The handler must not return.
func SetFaultHandler(h func(error)) {
	faultHandler = h
}

// SetExitHandler sets the platform handler invoked by Exit.
func SetExitHandler(h func(status int)) {
	exitHandler = h
}

// Fatal reports err on the log sink and hands it to the fault handler.
// Fatal never returns.
func Fatal(err error) {
	writeLine("PANIC " + err.Error())
	if faultHandler != nil {
		faultHandler(err)
	}
	// The handler returned; do not let the caller continue.
	panic(err)
}

// Exit reports status on the log sink and hands it to the exit handler.
// Exit never returns.
func Exit(status int) {
	writeLine("EXIT " + itoa(status))
	if exitHandler != nil {
		exitHandler(status)
	}
	select {}
}
