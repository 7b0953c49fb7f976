package view

// Config holds FileView's configurable state.
type Config struct {
	// readAhead makes OpenFile read one byte from every page of the
	// mapping right after mapping it, so the pages are faulted in up front.
	readAhead bool
}

// Option configures a FileView.
type Option func(*Config)

// WithReadAhead touches every page of the mapped region once at open time,
// trading memory for fewer page faults on a linear multi-record scan.
func WithReadAhead() Option {
	return func(c *Config) {
		c.readAhead = true
	}
}

func applyOptions(c *Config, opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}
