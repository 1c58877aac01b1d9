package serial

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 100, cfg.ReadTimeout)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(nil)
	require.EqualError(t, err, "config cannot be nil")

	_, err = Open(DefaultConfig("/nonexistent/tty-co2sensor"))
	require.ErrorContains(t, err, "/nonexistent/tty-co2sensor")
}

// openEmpty returns an *os.File with nothing to read. Reading it behaves like
// a tty read that hit VTIME: (0, io.EOF).
func openEmpty(t *testing.T) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ttyACM0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	return f
}

func TestReadTimeoutIsIdle(t *testing.T) {
	f := openEmpty(t)
	port := NewNativePort(f, DefaultConfig(f.Name()))
	defer port.Close()

	buf := make([]byte, 16)
	for i := 0; i < 3; i++ {
		n, err := port.Read(buf)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}

func TestReadWithoutTimeoutReportsEOF(t *testing.T) {
	f := openEmpty(t)
	cfg := DefaultConfig(f.Name())
	cfg.ReadTimeout = 0
	port := NewNativePort(f, cfg)
	defer port.Close()

	_, err := port.Read(make([]byte, 16))
	require.ErrorIs(t, err, io.EOF)
}

func TestReadPassesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttyACM0")
	require.NoError(t, os.WriteFile(path, []byte("INFO Hello, world!\n"), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)

	port := NewNativePort(f, DefaultConfig(path))
	defer port.Close()

	buf := make([]byte, 64)
	n, err := port.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "INFO Hello, world!\n", string(buf[:n]))
}

func TestCloseNilPort(t *testing.T) {
	require.NoError(t, (&NativePort{cfg: DefaultConfig("")}).Close())
}
