package modkit

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name  string
	ports any
}

// WithName sets a module name used in logs and registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPorts injects cross module ports declared by another module
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// Build folds options into a buildCfg for module constructors
func Build(opts ...Option) buildCfg {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Name returns the configured module name
func (c buildCfg) Name() string { return c.name }

// PortsValue returns the injected ports payload, nil when absent
func (c buildCfg) PortsValue() any { return c.ports }
