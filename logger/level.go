package logger

import (
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	NOTICE
	WARN
	ERROR
	FATAL
)

var levelNames = []string{
	"DEBUG",
	"INFO",
	"NOTICE",
	"WARN",
	"ERROR",
	"FATAL",
}

// String returns the string representation of a logging level.
func (l Level) String() string {
	return levelNames[l]
}

// LevelFromString returns the level matching a name such as "debug" or
// "warn", case-insensitively.
func LevelFromString(name string) (Level, error) {
	for i, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}
