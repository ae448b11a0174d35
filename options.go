package hjarta

import (
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/inspect"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigRoot provides a *config.Root for dir and a *config.Registry over it.
// Only one root can be provided per application.
func WithConfigRoot(dir string, opts ...config.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, config.NewModule(dir, opts...))
	}
}

// WithInspector serves the read-only HTTP inspector for the application's
// *config.Registry. It requires WithConfigRoot or another provider of the registry.
func WithInspector(opts ...inspect.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, inspect.NewModule(opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
