package inspect

// Option configures the inspector.
type Option func(*Config)

// WithAddress sets the listen address, such as "127.0.0.1:9090".
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}
