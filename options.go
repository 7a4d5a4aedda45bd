package texit

// Option configures conversion behavior.
type Option func(*config)

type config struct {
	balanced bool
	wrap     int
}

// WithBalanced closes the text group on unmarked lines. The legacy output
// leaves that brace open and only emits the continuation token; balanced
// mode produces well-formed TeX groups instead.
func WithBalanced(enabled bool) Option {
	return func(cfg *config) {
		cfg.balanced = enabled
	}
}

// WithWrap word-wraps input lines at the given width before conversion.
// Continuation lines produced by wrapping are converted as plain text.
// A width of zero or less disables wrapping.
func WithWrap(width int) Option {
	return func(cfg *config) {
		cfg.wrap = width
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
