package tpf

import (
	"os"
	"strings"
)

// Buffer is a fixed-capacity sink over a caller-owned byte slice. It keeps at
// most len(dst)-1 bytes so that a terminating NUL always fits, and drops the
// rest without reporting a short write: a formatting call into a Buffer
// returns the length the complete output would have had.
type Buffer struct {
	dst []byte
	n   int
}

// NewBuffer returns a Buffer writing into dst.
func NewBuffer(dst []byte) *Buffer {
	return &Buffer{dst: dst}
}

// Write stores as much of p as fits and reports all of it as written.
func (b *Buffer) Write(p []byte) (int, error) {
	if room := len(b.dst) - 1 - b.n; room > 0 {
		b.n += copy(b.dst[b.n:b.n+min(room, len(p))], p)
	}
	return len(p), nil
}

// Len returns the number of bytes stored.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the stored bytes, without the terminator.
func (b *Buffer) Bytes() []byte { return b.dst[:b.n] }

// String returns the stored bytes as a string.
func (b *Buffer) String() string { return string(b.Bytes()) }

// Terminate writes a NUL after the stored bytes. It does nothing when the
// buffer has no capacity.
func (b *Buffer) Terminate() {
	if len(b.dst) > 0 {
		b.dst[b.n] = 0
	}
}

// Snprintf formats into dst, truncating to len(dst)-1 bytes and NUL
// terminating whenever dst is non-empty. It returns the untruncated length.
func (c *Context) Snprintf(dst []byte, format string, args ...Arg) (int, error) {
	b := NewBuffer(dst)
	n, err := c.Vfprintf(b, format, NewArgs(args...))
	b.Terminate()
	return n, err
}

// Sprintf formats into a new string.
func (c *Context) Sprintf(format string, args ...Arg) (string, error) {
	var sb strings.Builder
	if _, err := c.Vfprintf(&sb, format, NewArgs(args...)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Printf formats to standard output.
func (c *Context) Printf(format string, args ...Arg) (int, error) {
	return c.Vfprintf(os.Stdout, format, NewArgs(args...))
}
