package tpf

import (
	"errors"
	"io"
	"math"
	"strings"
)

// Fprintf formats args according to format and writes the result to w. It
// returns the number of bytes written, or [Failed] and an error.
func (c *Context) Fprintf(w io.Writer, format string, args ...Arg) (int, error) {
	return c.Vfprintf(w, format, NewArgs(args...))
}

// Vfprintf is Fprintf with an already collected argument list.
func (c *Context) Vfprintf(w io.Writer, format string, args *Args) (int, error) {
	if args == nil {
		args = NewArgs()
	}
	s := &State{out: w, format: format}
	for i := 0; i < len(format) && s.werr == nil; {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			s.WriteString(format[i:])
			break
		}
		s.WriteString(format[i : i+j])
		i += j
		if s.werr != nil {
			break
		}
		next, err := c.convert(s, i, args)
		if err != nil {
			return Failed, err
		}
		i = next
	}
	if s.werr != nil {
		return Failed, s.werr
	}
	return s.pos, nil
}

// convert handles the directive starting at format[start] and returns the
// offset just past it.
func (c *Context) convert(s *State, start int, args *Args) (int, error) {
	s.dir = directive{}
	defer func() { s.dir = directive{} }()
	s.offset = start

	format := s.format
	p := readFlags(s, format, start+1)

	p, err := readWidth(s, format, p, args)
	if err != nil {
		return 0, err
	}
	p, err = readPrecision(s, format, p, args)
	if err != nil {
		return 0, err
	}

	l, n := parseLength(format[p:])
	s.dir.length = l
	p += n

	if p >= len(format) {
		return 0, s.fail(KindDirective, ErrUnknownSpecifier, "incomplete directive at end of format")
	}
	spec := format[p]
	d := c.fmts[spec]
	if d == nil {
		err := s.fail(KindDirective, ErrUnknownSpecifier, "'%c': no formatter known for conversion", Byte(spec))
		err.(*DirectiveError).Spec = spec
		return 0, err
	}
	s.dir.desc = d
	if f, ok := d.Accepts(s.dir.flags); !ok {
		return 0, s.fail(KindDirective, ErrInvalidFlag, "'%c': invalid flag for conversion '%c'", Byte(f), Byte(spec))
	}

	if err := d.Conv(s, args); err != nil {
		var de *DirectiveError
		if errors.As(err, &de) {
			return 0, err
		}
		return 0, s.fail(KindConversion, err, "%s", Str(err.Error()))
	}
	s.Repeat(' ', s.dir.padding)
	return p + 1, nil
}

// isFlagEnd reports whether c ends a directive's flag run.
func isFlagEnd(c byte) bool {
	switch {
	case c == '0':
		return false
	case '1' <= c && c <= '9', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	default:
		return c == '.' || c == '%' || c == '*'
	}
}

func readFlags(s *State, format string, p int) int {
	q := p
	for q < len(format) && !isFlagEnd(format[q]) {
		q++
	}
	flags := format[p:q]
	if len(flags) > MaxFlags {
		flags = flags[:MaxFlags]
	}
	s.dir.flags = sortFlags(flags)
	return q
}

// readNumber reads decimal digits at format[p:]. ok is false when the value
// does not fit a C int.
func readNumber(format string, p int) (v, end int, ok bool) {
	end = p
	ok = true
	for end < len(format) && '0' <= format[end] && format[end] <= '9' {
		if ok {
			v = v*10 + int(format[end]-'0')
			if v > math.MaxInt32 {
				ok = false
			}
		}
		end++
	}
	return v, end, ok
}

func readWidth(s *State, format string, p int, args *Args) (int, error) {
	if p < len(format) && format[p] == '*' {
		v, err := args.Int()
		if err != nil {
			return 0, s.fail(KindConversion, err, "%s", Str(err.Error()))
		}
		if v < 0 {
			return 0, s.fail(KindNumeric, ErrNegativeWidth, "%d: field width cannot be negative", Int(int32(v)))
		}
		s.dir.width, s.dir.widthSet = v, true
		return p + 1, nil
	}
	v, end, ok := readNumber(format, p)
	if !ok {
		return 0, s.fail(KindNumeric, ErrWidthTooLarge, "%s: field width is too large", Str(format[p:end]))
	}
	if end > p {
		s.dir.width, s.dir.widthSet = v, true
	}
	return end, nil
}

func readPrecision(s *State, format string, p int, args *Args) (int, error) {
	if p >= len(format) || format[p] != '.' {
		return p, nil
	}
	p++
	if p < len(format) && format[p] == '*' {
		v, err := args.Int()
		if err != nil {
			return 0, s.fail(KindConversion, err, "%s", Str(err.Error()))
		}
		if v < 0 {
			return 0, s.fail(KindNumeric, ErrNegativePrecision, "%d: precision cannot be negative", Int(int32(v)))
		}
		s.dir.prec, s.dir.precSet = v, true
		return p + 1, nil
	}

	neg := false
	digits := p
	if p+1 < len(format) && (format[p] == '-' || format[p] == '+') && isDigit(format[p+1]) {
		neg = format[p] == '-'
		digits = p + 1
	}
	v, end, ok := readNumber(format, digits)
	if !ok {
		return 0, s.fail(KindNumeric, ErrPrecisionTooLarge, "%s: precision is too large", Str(format[p:end]))
	}
	if neg && v != 0 {
		return 0, s.fail(KindNumeric, ErrNegativePrecision, "%s: precision cannot be negative", Str(format[p:end]))
	}
	s.dir.prec, s.dir.precSet = v, true
	return end, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
