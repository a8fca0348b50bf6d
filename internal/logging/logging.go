package logging

import (
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	level   = LevelWarning
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(os.Stderr, "D ", flags)
	info = log.New(os.Stderr, "I ", flags)
	warning = log.New(os.Stderr, "W ", flags)
	error = log.New(os.Stderr, "E ", flags)
}

// SetLevel sets the minimum level for messages to be written.
func SetLevel(l Level) {
	level = l
}

func logf(l *log.Logger, lvl Level, msg string, v []interface{}) {
	if lvl < level {
		return
	}
	l.Printf(msg, v...)
}

func Debug(msg string, v ...interface{}) {
	logf(debug, LevelDebug, msg, v)
}

func Info(msg string, v ...interface{}) {
	logf(info, LevelInfo, msg, v)
}

func Warning(msg string, v ...interface{}) {
	logf(warning, LevelWarning, msg, v)
}

func Error(msg string, v ...interface{}) {
	logf(error, LevelError, msg, v)
}
