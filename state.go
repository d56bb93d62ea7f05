package tpf

import (
	"fmt"
	"io"
	"strings"
)

// directive holds what the parser read for the directive being converted.
// The engine starts every directive from a zero value.
type directive struct {
	desc     *Descriptor
	flags    string
	width    int
	widthSet bool
	prec     int
	precSet  bool
	length   Length
	padding  int // trailing spaces owed by a left-justified conversion
}

// State is the per-call formatting state handed to conversions. It is only
// valid for the duration of the conversion it is passed to.
type State struct {
	out    io.Writer
	pos    int
	werr   error
	format string
	offset int
	dir    directive
}

// Spec returns the specifier being converted.
func (s *State) Spec() byte {
	if s.dir.desc == nil {
		return 0
	}
	return s.dir.desc.Spec
}

// Flags returns the directive's flags, sorted by byte value.
func (s *State) Flags() string { return s.dir.flags }

// HasFlag reports whether the directive carries flag c.
func (s *State) HasFlag(c byte) bool { return strings.IndexByte(s.dir.flags, c) >= 0 }

// Width returns the field width and whether one was given.
func (s *State) Width() (int, bool) { return s.dir.width, s.dir.widthSet }

// Precision returns the precision and whether one was given.
func (s *State) Precision() (int, bool) { return s.dir.prec, s.dir.precSet }

// ClearPrecision forgets the directive's precision.
func (s *State) ClearPrecision() { s.dir.prec, s.dir.precSet = 0, false }

// Length returns the directive's length modifier.
func (s *State) Length() Length { return s.dir.length }

// Pos returns the number of bytes written so far in this call.
func (s *State) Pos() int { return s.pos }

// Write sends p to the output. After a short write every later write is
// dropped and the call fails.
func (s *State) Write(p []byte) {
	if s.werr != nil || len(p) == 0 {
		return
	}
	n, err := s.out.Write(p)
	if n > len(p) {
		n = len(p)
	}
	s.pos += n
	switch {
	case err != nil:
		s.werr = fmt.Errorf("%w: %w", ErrShortWrite, err)
	case n < len(p):
		s.werr = fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, len(p))
	}
}

// WriteString is Write for strings.
func (s *State) WriteString(str string) {
	if s.werr != nil || str == "" {
		return
	}
	s.Write([]byte(str))
}

// Repeat writes n copies of c.
func (s *State) Repeat(c byte, n int) {
	if n <= 0 || s.werr != nil {
		return
	}
	var buf [32]byte
	for i := range buf {
		buf[i] = c
	}
	for n > 0 && s.werr == nil {
		k := min(n, len(buf))
		s.Write(buf[:k])
		n -= k
	}
}

// leftJustified reports whether the directive asks for left justification.
func (s *State) leftJustified() bool { return s.HasFlag('-') }

// Pad applies field-width padding for a conversion whose output is natural
// bytes wide. Right-justified output gets the spaces now, so call Pad before
// writing the converted text; left-justified output gets them once the
// conversion returns.
func (s *State) Pad(natural int) {
	if !s.dir.widthSet || natural >= s.dir.width {
		return
	}
	pad := s.dir.width - natural
	if s.leftJustified() {
		s.dir.padding = pad
		return
	}
	s.Repeat(' ', pad)
}

// Errorf builds a conversion error for the current directive. The message is
// rendered by this package's own formatter, which knows the standard and
// extended specifiers.
func (s *State) Errorf(format string, args ...Arg) error {
	return s.fail(KindConversion, ErrBadArgument, format, args...)
}

// Fail is like Errorf but wraps cause, which callers can match with
// errors.Is.
func (s *State) Fail(cause error, format string, args ...Arg) error {
	return s.fail(KindConversion, cause, format, args...)
}

func (s *State) fail(kind ErrorKind, cause error, format string, args ...Arg) error {
	msg, err := builtin().Sprintf(format, args...)
	if err != nil {
		msg = format
	}
	return &DirectiveError{
		Kind:    kind,
		Format:  s.format,
		Offset:  s.offset,
		Spec:    s.Spec(),
		Message: msg,
		Err:     cause,
	}
}
