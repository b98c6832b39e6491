package Trees

import "github.com/rs/zerolog"

type config struct {
	log      zerolog.Logger
	queueCap uint
}

func defaultConfig() config {
	return config{log: zerolog.Nop(), queueCap: 16}
}

// Option configures a BST created by New or From.
type Option func(*config)

// WithLogger sets the logger receiving debug events for structural changes.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l.With().Str("scope", "bst").Logger()
	}
}

// WithQueueCap sets the initial capacity of the queue Levels uses. Zero
// keeps the default.
func WithQueueCap(n uint) Option {
	return func(c *config) {
		if n > 0 {
			c.queueCap = n
		}
	}
}
