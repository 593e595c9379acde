package wire

import "github.com/colwire/chcol/chcolerr"

// Cursor is a read-only view over a decode input with an advancing
// offset. It never copies; every Take call returns a sub-slice of the
// original buffer, matching the decoder's zero-copy borrowing contract.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a Cursor over data starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Remaining returns the unread suffix of the input, borrowed.
func (c *Cursor) Remaining() []byte {
	return c.data[c.pos:]
}

// Take returns the next n bytes and advances the cursor, or
// chcolerr.ErrTruncatedInput if fewer than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, chcolerr.At(c.pos, chcolerr.ErrTruncatedInput)
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// Advance moves the cursor forward by n bytes without returning them.
func (c *Cursor) Advance(n int) error {
	_, err := c.Take(n)
	return err
}

// Peek returns the next n bytes without advancing the cursor.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, chcolerr.At(c.pos, chcolerr.ErrTruncatedInput)
	}

	return c.data[c.pos : c.pos+n], nil
}
