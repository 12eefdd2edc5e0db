// Package logging is a small levelled front end over the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

var (
	current = int32(LevelInfo)
	colored atomic.Bool
)

func init() {
	colored.Store(true)
}

// ParseLevel maps a config string to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// SetLevel sets the minimum level that is written
func SetLevel(l Level) { atomic.StoreInt32(&current, int32(l)) }

// CurrentLevel returns the minimum level that is written
func CurrentLevel() Level { return Level(atomic.LoadInt32(&current)) }

// SetOutput redirects log output. Colours are dropped for anything but the
// default terminal output.
func SetOutput(w io.Writer, color bool) {
	log.SetOutput(w)
	colored.Store(color)
}

func logMessage(level Level, format string, v ...any) {
	if level < CurrentLevel() {
		return
	}

	prefix := "[" + level.String() + "] "
	if colored.Load() {
		var code string
		switch level {
		case LevelDebug:
			code = colorCyan
		case LevelInfo:
			code = colorBlue
		case LevelWarn:
			code = colorYellow
		case LevelError:
			code = colorRed
		}
		prefix = code + "[" + level.String() + "]" + colorReset + " "
	}
	log.Printf(prefix+format, v...)
}

func Debug(format string, v ...any) { logMessage(LevelDebug, format, v...) }
func Info(format string, v ...any)  { logMessage(LevelInfo, format, v...) }
func Warn(format string, v ...any)  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...any) { logMessage(LevelError, format, v...) }
