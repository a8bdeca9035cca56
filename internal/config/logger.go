package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Caller *bool
	Level  string
}

func (l *Logger) setDefaults() {
	l.Caller = gosettings.DefaultPointer(l.Caller, false)
	l.Level = gosettings.DefaultComparable(l.Level, "info")
}

func (l Logger) Validate() (err error) {
	_, err = parseLogLevel(l.Level)
	return err
}

// ToOptions converts the settings to options to patch
// the program logger with.
func (l Logger) ToOptions() (options []log.Option) {
	level, err := parseLogLevel(l.Level)
	if err != nil { // settings were validated before
		panic(err)
	}
	options = append(options, log.SetLevel(level))
	if *l.Caller {
		options = append(options, log.SetCallerFile(true))
	}
	return options
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", l.Level)
	node.Appendf("Log caller: %t", *l.Caller)
	return node
}

func (l *Logger) read(reader *reader.Reader) (err error) {
	l.Caller, err = reader.BoolPtr("LOG_CALLER")
	if err != nil {
		return err
	}

	l.Level = reader.String("LOG_LEVEL")

	return nil
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}
