package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// NativePort reads the firmware log through github.com/tarm/serial.
//
// On POSIX systems tarm/serial implements ReadTimeout with VMIN=0/VTIME, so
// a read that times out comes back from the tty as (0, io.EOF). NativePort
// reports that as (0, nil) to keep an idle firmware distinct from a closed
// port.
type NativePort struct {
	rc  io.ReadCloser
	cfg *Config
}

// Open opens the firmware's log port.
func Open(cfg *Config) (*NativePort, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return NewNativePort(port, cfg), nil
}

// NewNativePort wraps an already open port or tty file.
func NewNativePort(rc io.ReadCloser, cfg *Config) *NativePort {
	return &NativePort{rc: rc, cfg: cfg}
}

// Read reads log bytes. A timed-out read returns (0, nil).
func (p *NativePort) Read(b []byte) (int, error) {
	n, err := p.rc.Read(b)
	if n == 0 && errors.Is(err, io.EOF) && p.cfg.ReadTimeout > 0 {
		return 0, nil
	}
	return n, err
}

// Close closes the port.
func (p *NativePort) Close() error {
	if p.rc == nil {
		return nil
	}
	return p.rc.Close()
}
