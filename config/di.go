package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module providing a *Root for dir and a *Registry over it.
// Unless an option sets one, diagnostics go to a SlogSink over the container's *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(dir string, opts ...Option) fx.Option {
	if dir == "" {
		return fx.Error(ErrEmptyRoot)
	}

	return fx.Module("config",
		fx.Provide(
			func(logger *slog.Logger) (*Root, error) {
				rootOpts := append([]Option{WithSink(NewSlogSink(logger))}, opts...)

				return NewRoot(dir, rootOpts...)
			},
			NewRegistry,
		),
	)
}
