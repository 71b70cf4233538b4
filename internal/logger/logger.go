package logger

import (
	"fmt"
	"log"
	"sync/atomic"
)

// Level controls which log lines are emitted.
type Level int32

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel changes the global log level.
func SetLevel(l Level) {
	current.Store(int32(l))
}

func enabled(l Level) bool {
	return Level(current.Load()) >= l
}

func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		log.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
	}
}

func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		log.Printf("[WARN] %s", fmt.Sprintf(format, args...))
	}
}

func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		log.Printf("[INFO] %s", fmt.Sprintf(format, args...))
	}
}

func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		log.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
	}
}

func Tracef(format string, args ...any) {
	if enabled(LevelTrace) {
		log.Printf("[TRACE] %s", fmt.Sprintf(format, args...))
	}
}
