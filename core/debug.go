package core

// LogWriter is a function type for writing one log line (without newline)
type LogWriter func(string)

// LogLevel orders log events by severity
type LogLevel uint8

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "LEVEL" + itoa(int(l))
}

var (
	// logPrintln is the global log output function (set by platform code)
	logPrintln LogWriter = func(s string) {} // No-op by default

	// logLevel is the lowest level that reaches the writer.
	// Trace is on by default so demo builds show every level.
	logLevel = LevelTrace
)

// SetLogWriter sets the platform-specific log output function.
// This allows platforms to redirect log output to UART, USB, etc.
func SetLogWriter(writer LogWriter) {
	logPrintln = writer
}

// SetLogLevel sets the lowest level that is written
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// Logger is the leveled sink the firmware logic talks to.
// Writes are fire-and-forget: a slow or absent transport never surfaces here.
type Logger interface {
	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// SinkLogger is the Logger backed by the global LogWriter.
type SinkLogger struct{}

// DefaultLogger writes through whatever SetLogWriter installed.
var DefaultLogger Logger = SinkLogger{}

func (SinkLogger) Trace(msg string) { Log(LevelTrace, msg) }
func (SinkLogger) Debug(msg string) { Log(LevelDebug, msg) }
func (SinkLogger) Info(msg string)  { Log(LevelInfo, msg) }
func (SinkLogger) Warn(msg string)  { Log(LevelWarn, msg) }
func (SinkLogger) Error(msg string) { Log(LevelError, msg) }

// Log writes msg prefixed with its level if the level is enabled.
func Log(level LogLevel, msg string) {
	if level < logLevel {
		return
	}
	writeLine(level.String() + " " + msg)
}

// writeLine bypasses the level filter; used for PANIC and EXIT markers.
func writeLine(s string) {
	if logPrintln != nil {
		logPrintln(s)
	}
}
