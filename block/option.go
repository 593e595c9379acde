package block

import "github.com/colwire/chcol/column"

// Config is the block reader's configuration: the column package's
// Config plus the one option that only makes sense at block scope
// (Nested column flattening is a sibling-column concern, not a
// per-column one).
type Config struct {
	column.Config
	AssumeFlattenedNested bool
}

// Option configures a Config.
type Option func(*Config)

// WithCopyOnDecode forces every decoded column to own its backing bytes
// instead of borrowing from the input.
func WithCopyOnDecode(v bool) Option {
	return func(c *Config) { c.CopyOnDecode = v }
}

// WithStrictUTF8 rejects non-UTF-8 String/FixedString rows at decode
// time instead of leaving validation to the caller.
func WithStrictUTF8(v bool) Option {
	return func(c *Config) { c.StrictUTF8 = v }
}

// WithAssumeFlattenedNested interprets "parent.field" sibling columns
// as the flattened form of Nested(field...) and regroups them into a
// single Nested column, instead of leaving them as independent
// top-level columns.
func WithAssumeFlattenedNested(v bool) Option {
	return func(c *Config) { c.AssumeFlattenedNested = v }
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
