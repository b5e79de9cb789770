package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu          sync.Mutex
	minLevel    = LevelInfo
	disableLogs = false
	noColor     = false
	stdout      io.Writer = os.Stdout
	stderr      io.Writer = os.Stderr
	logPrefixes = map[Level][2]string{
		LevelDebug: {"\033[37m[DBG]\033[0m", "[DBG]"}, // White
		LevelInfo:  {"\033[36m[INF]\033[0m", "[INF]"}, // Cyan
		LevelWarn:  {"\033[33m[WRN]\033[0m", "[WRN]"}, // Yellow
		LevelError: {"\033[31m[ERR]\033[0m", "[ERR]"}, // Red
	}
)

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", name)
	}
}

// SetLevel sets the minimal level that is written.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// SetVerbose enables debug output. Disabling it falls back to the info level.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// IsVerbose returns true if debug messages are written.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return minLevel == LevelDebug
}

// DisableLogs disables all logging.
func DisableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = true
}

// EnableLogs re-enables logging after DisableLogs.
func EnableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = false
}

// IsDisabled returns true if logging is disabled.
func IsDisabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return disableLogs
}

// SetNoColor strips ANSI colors from level prefixes.
func SetNoColor(v bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = v
}

// SetOutput redirects logs. Errors go to errOut, everything else to out.
// A nil writer keeps the current one.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	logMessage(LevelDebug, format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(LevelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(LevelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(LevelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(LevelError, format, args...)
	os.Exit(1)
}

func logMessage(level Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if disableLogs || level < minLevel {
		return
	}

	prefix := logPrefixes[level][0]
	if noColor {
		prefix = logPrefixes[level][1]
	}
	output := prefix + " " + fmt.Sprintf(format, args...) + "\n"

	if level == LevelError {
		_, _ = io.WriteString(stderr, output)
	} else {
		_, _ = io.WriteString(stdout, output)
	}
}
