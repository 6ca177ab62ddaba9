package logger

import (
	"log"

	"github.com/junction-http/junction"
)

// A LoggerOptFn is a functional option configuring a JunctionLogger when constructing a new one.
type LoggerOptFn func(*JunctionLogger)

// WithEnv sets the environment JunctionLogger is operating in.
func WithEnv(env junction.Environment) func(*JunctionLogger) {
	return func(l *JunctionLogger) {
		l.env = env
	}
}

// WithLevel sets the log level JunctionLogger uses.
func WithLevel(level LogLevel) func(*JunctionLogger) {
	return func(l *JunctionLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger JunctionLogger uses.
func WithLogger(log *log.Logger) func(*JunctionLogger) {
	return func(l *JunctionLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*JunctionLogger) {
	return func(l *JunctionLogger) {
		l.skip = skip
	}
}
