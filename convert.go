package tpf

import (
	"unicode/utf8"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// IntFormat describes how FormatInteger renders a magnitude.
type IntFormat struct {
	Base   int    // 2 to 16
	Digits string // digit alphabet, at least Base long
	Prefix string // written after the sign when non-empty
	Signed bool   // honor the '+' and ' ' flags
}

// FormatInteger renders a magnitude with the directive's flags, field width
// and precision. The precision is the minimum number of digits; a zero
// precision with a zero value renders no digits. Zero padding from the '0'
// flag goes between the sign or prefix and the digits, and is ignored when
// the directive is left-justified or carries a precision. A base outside 2
// to 16, or an alphabet shorter than the base, fails with [ErrBadArgument]
// and writes nothing.
func (s *State) FormatInteger(v uint64, negative bool, f IntFormat) error {
	if f.Base < 2 || f.Base > 16 || len(f.Digits) < f.Base {
		return s.Fail(ErrBadArgument, "base %d with %zu digits: invalid integer format", Int(int32(f.Base)), Size(uint64(len(f.Digits))))
	}
	var buf [64]byte
	i := len(buf)
	base := uint64(f.Base)
	for u := v; ; {
		i--
		buf[i] = f.Digits[u%base]
		u /= base
		if u == 0 {
			break
		}
	}
	digits := buf[i:]

	width := len(digits)
	prec, precSet := s.Precision()
	if precSet && prec > width {
		width = prec
	}
	if precSet && prec == 0 && v == 0 {
		digits, width = nil, 0
	}
	zeros := width - len(digits)

	var sign byte
	switch {
	case negative:
		sign = '-'
	case f.Signed && s.HasFlag('+'):
		sign = '+'
	case f.Signed && s.HasFlag(' '):
		sign = ' '
	}

	total := width + len(f.Prefix)
	if sign != 0 {
		total++
	}

	fw, fwSet := s.Width()
	if s.HasFlag('0') && !s.leftJustified() && !precSet {
		if fwSet && fw > total {
			zeros += fw - total
		}
	} else {
		s.Pad(total)
	}

	if sign != 0 {
		s.Write([]byte{sign})
	}
	s.WriteString(f.Prefix)
	s.Repeat('0', zeros)
	s.Write(digits)
	return nil
}

// FormatString writes str padded to the field width. A precision limits the
// number of bytes written.
func (s *State) FormatString(str string) {
	if prec, ok := s.Precision(); ok && prec < len(str) {
		str = str[:prec]
	}
	s.Pad(len(str))
	s.WriteString(str)
}

// FormatWide encodes rs as UTF-8 and writes it padded to the field width. A
// precision limits the number of bytes written; a character whose encoding
// would cross the limit is dropped along with everything after it.
func (s *State) FormatWide(rs []rune) error {
	limit, limited := s.Precision()
	var buf []byte
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			return s.Fail(ErrBadArgument, "%#x: invalid wide character", Uint(uint32(r)))
		}
		if limited && len(buf)+utf8.RuneLen(r) > limit {
			break
		}
		buf = utf8.AppendRune(buf, r)
	}
	s.Pad(len(buf))
	s.Write(buf)
	return nil
}

// signedValue splits v into magnitude and sign.
func signedValue(v int64) (uint64, bool) {
	if v < 0 {
		return -uint64(v), true
	}
	return uint64(v), false
}
