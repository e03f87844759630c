package modkit

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	ports any
}

// WithPorts injects ports declared by another module
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}
