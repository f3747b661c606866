package clicommand

import (
	"os"

	"github.com/adf-tools/adfdoc/logger"
	"github.com/oleiade/reflections"
	"github.com/urfave/cli"
)

var ConfigFlag = cli.StringFlag{
	Name:   "config",
	Usage:  "Path to a configuration file",
	EnvVar: "ADFDOC_CONFIG",
}

var DebugFlag = cli.BoolFlag{
	Name:   "debug",
	Usage:  "Enable debug mode",
	EnvVar: "ADFDOC_DEBUG",
}

var NoColorFlag = cli.BoolFlag{
	Name:   "no-color",
	Usage:  "Don't show colors in logging",
	EnvVar: "ADFDOC_NO_COLOR",
}

var LogLevelFlag = cli.StringFlag{
	Name:   "log-level",
	Value:  "notice",
	Usage:  "Set the log level, either debug, info, notice, warn or error",
	EnvVar: "ADFDOC_LOG_LEVEL",
}

var globalFlags = []cli.Flag{
	ConfigFlag,
	NoColorFlag,
	DebugFlag,
	LogLevelFlag,
}

// DefaultConfigFilePaths returns the paths searched for a config file when
// --config isn't given.
func DefaultConfigFilePaths() []string {
	return []string{
		"adfdoc.cfg",
		"~/.adfdoc.cfg",
	}
}

// CreateLogger builds the logger for a command from the global fields of its
// config struct (NoColor, LogLevel, Debug).
func CreateLogger(cfg any) logger.Logger {
	printer := logger.NewTextPrinter(os.Stderr)
	if noColor, err := reflections.GetField(cfg, "NoColor"); err == nil && noColor == true {
		printer.Colors = false
	}

	l := logger.NewConsoleLogger(printer, os.Exit)

	if levelName, err := reflections.GetField(cfg, "LogLevel"); err == nil {
		if name, ok := levelName.(string); ok && name != "" {
			level, err := logger.LevelFromString(name)
			if err != nil {
				l.Fatal("%s", err)
			}
			l.SetLevel(level)
		}
	}

	// A Debug option wins over log-level
	if debug, err := reflections.GetField(cfg, "Debug"); err == nil && debug == true {
		l.SetLevel(logger.DEBUG)
	}

	return l
}

func flatten(flagSets ...[]cli.Flag) []cli.Flag {
	length := 0
	for _, flagSet := range flagSets {
		length += len(flagSet)
	}

	flat := make([]cli.Flag, 0, length)
	for _, flagSet := range flagSets {
		flat = append(flat, flagSet...)
	}

	return flat
}
