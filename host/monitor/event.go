package monitor

import (
	"strconv"
	"strings"
)

// Level is the severity prefix the firmware puts on every log line.
type Level string

const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	// LevelPanic marks a fatal fault; the firmware halts right after it.
	LevelPanic Level = "PANIC"
	// LevelExit carries the exit status of a demo firmware.
	LevelExit Level = "EXIT"
	// LevelRaw is any line without a known prefix (runtime output, boot noise).
	LevelRaw Level = "RAW"
)

var knownLevels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelPanic, LevelExit}

// celsiusSuffix ends every temperature report.
const celsiusSuffix = " °C"

// Event is one parsed firmware log line.
type Event struct {
	Level   Level
	Message string
}

// ParseLine splits a log line into level and message.
func ParseLine(line string) Event {
	line = strings.TrimRight(line, "\r\n")
	for _, lvl := range knownLevels {
		prefix := string(lvl) + " "
		if strings.HasPrefix(line, prefix) {
			return Event{Level: lvl, Message: line[len(prefix):]}
		}
		if line == string(lvl) {
			return Event{Level: lvl}
		}
	}
	return Event{Level: LevelRaw, Message: line}
}

// Temperature returns the reading of a temperature report.
func (e Event) Temperature() (float64, bool) {
	if e.Level != LevelInfo || !strings.HasSuffix(e.Message, celsiusSuffix) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(e.Message, celsiusSuffix), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExitStatus returns the status carried by an EXIT event.
// A malformed status counts as a failure.
func (e Event) ExitStatus() (int, bool) {
	if e.Level != LevelExit {
		return 0, false
	}
	status, err := strconv.Atoi(strings.TrimSpace(e.Message))
	if err != nil {
		return ExitCodeFailure, true
	}
	return status, true
}
