package tpf

import (
	"github.com/mattn/go-runewidth"
)

func extendedBindings() []binding {
	return []binding{
		{'o', " +-0#", convOctal},
		{'b', " +-0#", convBinary},
		{'r', "!", convHexDump},
		{'W', " +-", convColumns},
	}
}

// RegisterExtended registers the conversions outside the C standard set:
//
//   - %o octal; '#' writes a leading 0
//   - %b binary; '#' writes 0b
//   - %r hex dump of the first precision bytes of a string; '!' groups the
//     output in pairs of bytes
//   - %W a string whose width and precision count terminal columns rather
//     than bytes
func RegisterExtended(c *Context) error {
	return register(c, extendedBindings())
}

func convOctal(s *State, args *Args) error  { return convBase(s, args, 8, lowerDigits, "0") }
func convBinary(s *State, args *Args) error { return convBase(s, args, 2, lowerDigits, "0b") }

func convHexDump(s *State, args *Args) error {
	n, ok := s.Precision()
	if !ok {
		return s.Errorf("hex dump needs a precision")
	}
	if s.Length() != LengthNone {
		return badLength(s)
	}
	data, err := args.Str()
	if err != nil {
		return err
	}
	if n > len(data) {
		return s.Fail(ErrBadArgument, "%d: hex dump longer than its %zu byte argument", Int(int32(n)), Size(uint64(len(data))))
	}
	group := s.HasFlag('!')
	out := make([]byte, 0, 3*n)
	for i := range n {
		if group && i > 0 && i%2 == 0 {
			out = append(out, ' ')
		}
		out = append(out, upperDigits[data[i]>>4], upperDigits[data[i]&0xF])
	}
	s.Write(out)
	return nil
}

func convColumns(s *State, args *Args) error {
	if s.Length() != LengthNone {
		return badLength(s)
	}
	str, err := args.Str()
	if err != nil {
		return err
	}
	if prec, ok := s.Precision(); ok {
		str = runewidth.Truncate(str, prec, "")
	}
	s.Pad(runewidth.StringWidth(str))
	s.WriteString(str)
	return nil
}

// Conversions returns the built-in conversions by name, for binding them to
// other specifiers. Each call returns a new map.
func Conversions() map[string]ConvFunc {
	return map[string]ConvFunc{
		"percent":  convPercent,
		"char":     convChar,
		"signed":   convSigned,
		"unsigned": convUnsigned,
		"hex":      convHex,
		"HEX":      convHexUpper,
		"octal":    convOctal,
		"binary":   convBinary,
		"count":    convCount,
		"pointer":  convPointer,
		"string":   convString,
		"hexdump":  convHexDump,
		"columns":  convColumns,
	}
}
