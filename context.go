package tpf

import (
	"fmt"
	"slices"
)

// MaxFlags is the most flag characters a descriptor accepts and the most a
// directive may carry. Extra flags in a directive are dropped.
const MaxFlags = 15

// ConvFunc converts one directive. It reads the arguments implied by the
// directive from args and writes through s. A non-nil error aborts the
// formatting call.
type ConvFunc func(s *State, args *Args) error

// Descriptor binds a specifier to its conversion.
type Descriptor struct {
	Spec  byte
	Flags string // accepted flag characters, sorted by byte value
	Conv  ConvFunc
}

// Accepts reports whether every flag in flags is accepted. Both sets must be
// sorted. On failure it returns the first flag that is not accepted.
func (d Descriptor) Accepts(flags string) (byte, bool) {
	allow := d.Flags
	for i := 0; i < len(flags); i++ {
		for allow != "" && allow[0] != flags[i] {
			allow = allow[1:]
		}
		if allow == "" {
			return flags[i], false
		}
	}
	return 0, true
}

// Context is a specifier registry. A Context may be shared by any number of
// concurrent formatting calls once it is populated; Register, Unregister and
// Reset must not run concurrently with anything else using it.
type Context struct {
	fmts [256]*Descriptor
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Register binds spec to fn. flags lists the flag characters directives for
// spec may carry. Registering an occupied specifier fails with
// [ErrSpecifierTaken] and leaves the existing binding in place.
func (c *Context) Register(spec byte, flags string, fn ConvFunc) error {
	if c.fmts[spec] != nil {
		return fmt.Errorf("%w: '%c'", ErrSpecifierTaken, spec)
	}
	if len(flags) > MaxFlags {
		return fmt.Errorf("%w: %d for '%c' (max %d)", ErrTooManyFlags, len(flags), spec, MaxFlags)
	}
	if fn == nil {
		return fmt.Errorf("%w: '%c'", ErrNilConversion, spec)
	}
	c.fmts[spec] = &Descriptor{Spec: spec, Flags: sortFlags(flags), Conv: fn}
	return nil
}

// Unregister removes the binding for spec, if any.
func (c *Context) Unregister(spec byte) {
	c.fmts[spec] = nil
}

// Reset removes every binding.
func (c *Context) Reset() {
	for i := range c.fmts {
		c.Unregister(byte(i))
	}
}

// Lookup returns the descriptor bound to spec.
func (c *Context) Lookup(spec byte) (Descriptor, bool) {
	d := c.fmts[spec]
	if d == nil {
		return Descriptor{}, false
	}
	return *d, true
}

// Specifiers returns the registered specifiers in byte order.
func (c *Context) Specifiers() []byte {
	var out []byte
	for i, d := range c.fmts {
		if d != nil {
			out = append(out, byte(i))
		}
	}
	return out
}

func sortFlags(flags string) string {
	b := []byte(flags)
	slices.Sort(b)
	return string(b)
}
