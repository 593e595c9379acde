package column

// Config carries the decode-wide settings threaded through every
// Decode call. Mirrors the options recognised at the block/chcol level
// (spec §6): copy_on_decode, strict_utf8, assume_flattened_nested.
type Config struct {
	// CopyOnDecode forces every borrowed byte view to be materialised
	// into an owned copy, so the caller may discard the source buffer
	// once decoding returns.
	CopyOnDecode bool

	// StrictUTF8 rejects non-UTF-8 String rows at decode time instead
	// of leaving validation to whoever later projects the row.
	StrictUTF8 bool
}

// Option mutates a Config. Options compose the way the teacher's
// encoder/blob option functions do: a slice of Option applied in order
// over a zero-value Config.
type Option func(*Config)

// WithCopyOnDecode forces owned copies of every borrowed byte view.
func WithCopyOnDecode(v bool) Option {
	return func(c *Config) { c.CopyOnDecode = v }
}

// WithStrictUTF8 rejects non-UTF-8 string rows at decode time.
func WithStrictUTF8(v bool) Option {
	return func(c *Config) { c.StrictUTF8 = v }
}

// NewConfig applies opts over a zero-value Config.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
