// Package chcol decodes the database's native columnar wire format:
// optionally-framed, optionally-compressed blocks of named, typed
// columns. DecodeBlock and DecodeStream are thin convenience wrappers
// over block.ReadBlock/block.ReadStream, mirroring the teacher's
// mebo.go top-level convenience constructors over its blob package.
package chcol

import (
	"io"
	"iter"

	"github.com/colwire/chcol/block"
	"github.com/colwire/chcol/block/frame"
	"github.com/colwire/chcol/wire"
)

// Config is the decoder's full configuration, combining the block
// reader's options with the frame-envelope opt-in.
type Config struct {
	block.Config
	ExpectFramed bool
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
// as the flattened form of a Nested column and regroups them.
func WithAssumeFlattenedNested(v bool) Option {
	return func(c *Config) { c.AssumeFlattenedNested = v }
}

// WithExpectFramed peels the native TCP protocol's per-block
// compression envelope (block/frame) before decoding each block. The
// default, false, matches spec §6's literal "no framing envelope"
// contract: data is treated as raw, back-to-back block bytes.
func WithExpectFramed(v bool) Option {
	return func(c *Config) { c.ExpectFramed = v }
}

func newConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// DecodeBlock decodes exactly one block from data, peeling a
// compression frame first when WithExpectFramed(true) was given.
func DecodeBlock(data []byte, opts ...Option) (block.Block, error) {
	cfg := newConfig(opts...)

	if cfg.ExpectFramed {
		payload, _, err := frame.Unwrap(data)
		if err != nil {
			return block.Block{}, err
		}
		data = payload
	}

	cur := wire.NewCursor(data)

	return block.ReadBlock(cur, cfg.Config)
}

// DecodeStream yields every block packed sequentially in r. When
// WithExpectFramed(true) was given, each block is expected to be
// individually frame-wrapped; otherwise r is treated as raw,
// back-to-back block bytes exactly as block.ReadStream does.
func DecodeStream(r io.Reader, opts ...Option) iter.Seq2[block.Block, error] {
	cfg := newConfig(opts...)

	if !cfg.ExpectFramed {
		return block.ReadStream(r, cfg.Config)
	}

	return func(yield func(block.Block, error) bool) {
		data, err := io.ReadAll(r)
		if err != nil {
			yield(block.Block{}, err)
			return
		}

		for len(data) > 0 {
			payload, rest, err := frame.Unwrap(data)
			if err != nil {
				yield(block.Block{}, err)
				return
			}

			b, err := block.ReadBlock(wire.NewCursor(payload), cfg.Config)
			if err != nil {
				yield(block.Block{}, err)
				return
			}
			if !yield(b, nil) {
				return
			}

			data = rest
		}
	}
}
