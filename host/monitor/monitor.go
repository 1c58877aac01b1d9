// Package monitor follows the firmware's log stream on the host.
//
// It re-emits every firmware event through zap, keeps prometheus metrics
// and decides the process exit status the way a probe runner does: the
// status carried by EXIT, or a failure after PANIC.
package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"co2sensor/host/serial"
)

// Exit codes returned by Run besides the firmware's own EXIT status.
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
	// ExitCodePanic is returned after the firmware reported a fatal fault.
	ExitCodePanic = 101
)

// ErrStreamClosed is returned when the stream ends before EXIT or PANIC.
var ErrStreamClosed = errors.New("log stream closed before the firmware finished")

// Monitor consumes firmware log lines.
type Monitor struct {
	log     *zap.SugaredLogger
	metrics *Metrics
}

// New creates a monitor. metrics may be nil.
func New(log *zap.SugaredLogger, metrics *Metrics) *Monitor {
	return &Monitor{log: log.Named("firmware"), metrics: metrics}
}

// Connect opens the firmware's serial port.
func Connect(cfg *serial.Config) (serial.Port, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to firmware: %w", err)
	}
	return port, nil
}

// Run reads r until the firmware exits, panics, the stream ends or ctx is
// done. It returns the exit status for the host process.
//
// Reads that return no data and no error are idle time, so r should time
// out regularly for ctx to be honored. serial.NativePort reports its read
// timeouts that way; io.EOF from r means the stream is gone.
func (m *Monitor) Run(ctx context.Context, r io.Reader) (int, error) {
	var (
		buf     = make([]byte, 256)
		pending []byte
	)

	for {
		if err := ctx.Err(); err != nil {
			return ExitCodeFailure, err
		}

		n, err := r.Read(buf)
		pending = append(pending, buf[:n]...)

		for {
			i := bytes.IndexByte(pending, '\n')
			if i < 0 {
				break
			}
			line := string(pending[:i])
			pending = pending[i+1:]

			if status, done := m.handle(ParseLine(line)); done {
				return status, nil
			}
		}

		if errors.Is(err, io.EOF) {
			if len(pending) > 0 {
				if status, done := m.handle(ParseLine(string(pending))); done {
					return status, nil
				}
			}
			return ExitCodeFailure, ErrStreamClosed
		}
		if err != nil {
			return ExitCodeFailure, fmt.Errorf("read firmware log: %w", err)
		}
	}
}

// handle logs one event and reports whether the firmware is done.
func (m *Monitor) handle(e Event) (int, bool) {
	if e.Level == LevelRaw && e.Message == "" {
		return 0, false
	}
	if m.metrics != nil {
		m.metrics.Observe(e)
	}

	switch e.Level {
	case LevelTrace, LevelDebug:
		m.log.Debugw(e.Message, "level", string(e.Level))
	case LevelInfo, LevelRaw:
		if c, ok := e.Temperature(); ok {
			m.log.Infow(e.Message, "celsius", c)
		} else {
			m.log.Info(e.Message)
		}
	case LevelWarn:
		m.log.Warn(e.Message)
	case LevelError:
		m.log.Error(e.Message)
	case LevelPanic:
		m.log.Errorw("firmware panicked", "reason", e.Message)
		return ExitCodePanic, true
	case LevelExit:
		status, _ := e.ExitStatus()
		m.log.Infow("firmware exited", "status", status)
		return status, true
	}
	return 0, false
}
