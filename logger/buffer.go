package logger

import (
	"fmt"
	"sync"
)

// Buffer is a Logger that collects messages in memory so tests can assert
// against them. Messages carry a lowercase level prefix like "[info] ".
// Fatal records the message without exiting, and every level is collected
// regardless of SetLevel.
type Buffer struct {
	mu       sync.Mutex
	Messages []string
}

// NewBuffer returns a Buffer with Messages initialized, so a test that
// expects no logging can compare against an empty slice rather than nil.
func NewBuffer() *Buffer {
	return &Buffer{Messages: []string{}}
}

func (b *Buffer) collect(level, format string, v ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Messages = append(b.Messages, "["+level+"] "+fmt.Sprintf(format, v...))
}

func (b *Buffer) Debug(format string, v ...any)  { b.collect("debug", format, v...) }
func (b *Buffer) Info(format string, v ...any)   { b.collect("info", format, v...) }
func (b *Buffer) Notice(format string, v ...any) { b.collect("notice", format, v...) }
func (b *Buffer) Warn(format string, v ...any)   { b.collect("warn", format, v...) }
func (b *Buffer) Error(format string, v ...any)  { b.collect("error", format, v...) }
func (b *Buffer) Fatal(format string, v ...any)  { b.collect("fatal", format, v...) }

func (b *Buffer) WithFields(fields ...Field) Logger { return b }

func (b *Buffer) SetLevel(level Level) {}

func (b *Buffer) Level() Level { return DEBUG }
