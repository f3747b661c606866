// Package logger provides a leveled logger for the adfdoc commands.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	nocolor   = "0"
	red       = "31"
	green     = "38;5;48"
	yellow    = "33"
	gray      = "38;5;251"
	lightgray = "38;5;243"
	cyan      = "1;36"
)

const DateFormat = "2006-01-02 15:04:05"

var windowsColors bool

type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Notice(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Fatal(format string, v ...any)

	WithFields(fields ...Field) Logger
	SetLevel(level Level)
	Level() Level
}

// Printer formats and outputs a single log line.
type Printer interface {
	Print(level Level, msg string, fields Fields)
}

// ConsoleLogger is a Logger that writes through a Printer, exiting the
// process via exitFn on Fatal.
type ConsoleLogger struct {
	level   Level
	printer Printer
	fields  Fields
	exitFn  func(int)
}

func NewConsoleLogger(printer Printer, exitFn func(int)) Logger {
	return &ConsoleLogger{
		level:   INFO,
		printer: printer,
		exitFn:  exitFn,
	}
}

// WithFields returns a copy of the logger with the provided fields attached
// to every message.
func (l *ConsoleLogger) WithFields(fields ...Field) Logger {
	clone := *l
	clone.fields = append(clone.fields[0:len(clone.fields):len(clone.fields)], fields...)
	return &clone
}

func (l *ConsoleLogger) SetLevel(level Level) {
	l.level = level
}

func (l *ConsoleLogger) Level() Level {
	return l.level
}

func (l *ConsoleLogger) Debug(format string, v ...any) {
	if l.level <= DEBUG {
		l.printer.Print(DEBUG, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Info(format string, v ...any) {
	if l.level <= INFO {
		l.printer.Print(INFO, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Notice(format string, v ...any) {
	if l.level <= NOTICE {
		l.printer.Print(NOTICE, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Warn(format string, v ...any) {
	if l.level <= WARN {
		l.printer.Print(WARN, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Error(format string, v ...any) {
	l.printer.Print(ERROR, fmt.Sprintf(format, v...), l.fields)
}

func (l *ConsoleLogger) Fatal(format string, v ...any) {
	l.printer.Print(FATAL, fmt.Sprintf(format, v...), l.fields)
	l.exitFn(1)
}

// TextPrinter prints log lines as human-readable text, optionally with ANSI
// colors.
type TextPrinter struct {
	Colors bool

	mu     sync.Mutex
	writer io.Writer
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{
		Colors: ColorsAvailable(),
		writer: w,
	}
}

func ColorsAvailable() bool {
	// Color support for windows is set in init
	if runtime.GOOS == "windows" && !windowsColors {
		return false
	}

	// Colors can only be shown if STDOUT is a terminal
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (p *TextPrinter) Print(level Level, msg string, fields Fields) {
	now := time.Now().Format(DateFormat)

	fieldStr := ""
	for _, field := range fields {
		fieldStr += " " + field.Key() + "=" + field.String()
	}

	var line string
	if p.Colors {
		levelColor := green
		messageColor := nocolor

		switch level {
		case DEBUG:
			levelColor = gray
			messageColor = gray
		case NOTICE:
			levelColor = cyan
		case WARN:
			levelColor = yellow
		case ERROR:
			levelColor = red
		case FATAL:
			levelColor = red
			messageColor = red
		}

		line = fmt.Sprintf("\x1b[%sm%s %-6s\x1b[0m \x1b[%sm%s\x1b[0m\x1b[%sm%s\x1b[0m\n",
			levelColor, now, level, messageColor, msg, lightgray, fieldStr)
	} else {
		line = fmt.Sprintf("%s %-6s %s%s\n", now, level, msg, fieldStr)
	}

	// Make sure we're only outputting a line one at a time
	p.mu.Lock()
	fmt.Fprint(p.writer, line)
	p.mu.Unlock()
}

// JSONPrinter prints log lines as single-line JSON objects, one per line.
type JSONPrinter struct {
	mu     sync.Mutex
	writer io.Writer
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

func (p *JSONPrinter) Print(level Level, msg string, fields Fields) {
	entry := map[string]string{
		"ts":    time.Now().Format(DateFormat),
		"level": level.String(),
		"msg":   msg,
	}
	for _, field := range fields {
		entry[field.Key()] = field.String()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		// A map of strings always marshals, but don't drop the
		// message if it somehow doesn't.
		line = fmt.Appendf(nil, `{"level":%q,"msg":"log entry could not be marshalled: %v"}`, level, err)
	}

	p.mu.Lock()
	fmt.Fprintln(p.writer, string(line))
	p.mu.Unlock()
}
