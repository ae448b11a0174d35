package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/0xalexb/hjarta-config/markup"

	"github.com/go-logr/logr"
)

const consolePrefix = "&8[&c%s &c&lSEVERE&8] &f"

// Sink receives rendered diagnostic blocks. Emit is fire-and-forget.
type Sink interface {
	Emit(lines []string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(lines []string)

// Emit calls f(lines).
func (f SinkFunc) Emit(lines []string) {
	f(lines)
}

type discard struct{}

func (discard) Emit([]string) {}

// Discard is a Sink that drops every diagnostic.
//
//nolint:gochecknoglobals // stateless sink
var Discard Sink = discard{}

// SlogSink logs every diagnostic line at error level with markup removed.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a SlogSink. A nil logger means slog.Default at emit time.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Emit(lines []string) {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, line := range lines {
		logger.Error(markup.Strip(line))
	}
}

// ConsoleSink writes every diagnostic line to a terminal, prefixed with the
// application name and styled with ANSI colors when w supports them.
type ConsoleSink struct {
	w        io.Writer
	prefix   string
	renderer *markup.Renderer
}

// NewConsoleSink creates a ConsoleSink writing to w.
func NewConsoleSink(w io.Writer, name string) *ConsoleSink {
	return &ConsoleSink{
		w:        w,
		prefix:   fmt.Sprintf(consolePrefix, name),
		renderer: markup.NewRenderer(w),
	}
}

func (s *ConsoleSink) Emit(lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(s.w, s.renderer.Render(s.prefix+line))
	}
}

// LogrSink reports every diagnostic line through a logr.Logger with markup removed.
type LogrSink struct {
	logger logr.Logger
}

// NewLogrSink creates a LogrSink.
func NewLogrSink(logger logr.Logger) *LogrSink {
	return &LogrSink{logger: logger}
}

func (s *LogrSink) Emit(lines []string) {
	for _, line := range lines {
		s.logger.Error(nil, markup.Strip(line))
	}
}
