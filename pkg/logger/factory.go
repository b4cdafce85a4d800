package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a logger built by New or NewWithSentry.
type Option func(*options)

type options struct {
	output     io.Writer
	component  string
	extractors []ContextExtractor
	level      slog.Level
}

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithComponent adds a "component" attribute to every entry.
func WithComponent(name string) Option {
	return func(o *options) {
		o.component = name
	}
}

// WithExtractors adds context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

func newOptions(opts ...Option) *options {
	o := &options{output: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) build(next slog.Handler) *slog.Logger {
	log := slog.New(NewHandler(next, o.extractors...))
	if o.component != "" {
		log = log.With(slog.String("component", o.component))
	}
	return log
}

// New creates a JSON logger.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts...)
	return o.build(slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level}))
}
