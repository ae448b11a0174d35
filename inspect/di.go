package inspect

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that serves the inspector for the container's
// *config.Registry during the application lifecycle. A serve failure shuts the
// application down.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	return fx.Module("inspect",
		fx.Invoke(func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, registry *config.Registry) error {
			srv, err := NewServer(registry, cfg, func() {
				shutdownErr := shutdowner.Shutdown()
				if shutdownErr != nil {
					slog.Error("failed to trigger shutdown", "error", shutdownErr)
				}
			})
			if err != nil {
				return err
			}

			lifecycle.Append(fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			})

			return nil
		}),
	)
}
