package tpf

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Kind is the variant held by an [Arg].
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindUint
	KindString
	KindWideString
	KindPointer
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "signed integer"
	case KindUint:
		return "unsigned integer"
	case KindString:
		return "string"
	case KindWideString:
		return "wide string"
	case KindPointer:
		return "pointer"
	case KindCount:
		return "count pointer"
	default:
		return "invalid argument"
	}
}

// Arg is one formatting argument. Integers carry the width of the C type they
// stand for so that a conversion can check them against its length modifier.
// Build values with the constructors below; the zero Arg matches nothing.
type Arg struct {
	kind Kind
	bits uint8
	raw  uint64 // integers (sign-extended) and pointers
	str  string
	wide []rune
	cnt  *int
}

// Kind reports the variant held by a.
func (a Arg) Kind() Kind { return a.kind }

func signed(v int64, bits uint8) Arg    { return Arg{kind: KindInt, bits: bits, raw: uint64(v)} }
func unsigned(v uint64, bits uint8) Arg { return Arg{kind: KindUint, bits: bits, raw: v} }

// Signed integer arguments, named after the C types they stand for.
func SChar(v int8) Arg     { return signed(int64(v), 8) }
func Short(v int16) Arg    { return signed(int64(v), 16) }
func Int(v int32) Arg      { return signed(int64(v), 32) }
func Long(v int64) Arg     { return signed(v, 64) }
func LongLong(v int64) Arg { return signed(v, 64) }
func IntMax(v int64) Arg   { return signed(v, 64) }
func PtrDiff(v int64) Arg  { return signed(v, 64) }
func WChar(r rune) Arg     { return signed(int64(r), 32) }

// Unsigned integer arguments, named after the C types they stand for.
func UChar(v uint8) Arg      { return unsigned(uint64(v), 8) }
func Byte(c byte) Arg        { return unsigned(uint64(c), 8) }
func UShort(v uint16) Arg    { return unsigned(uint64(v), 16) }
func Uint(v uint32) Arg      { return unsigned(uint64(v), 32) }
func ULong(v uint64) Arg     { return unsigned(v, 64) }
func ULongLong(v uint64) Arg { return unsigned(v, 64) }
func UIntMax(v uint64) Arg   { return unsigned(v, 64) }
func Size(v uint64) Arg      { return unsigned(v, 64) }

// Str is a narrow (byte) string argument for %s.
func Str(s string) Arg { return Arg{kind: KindString, str: s} }

// WStr is a wide string argument for %ls.
func WStr(s []rune) Arg { return Arg{kind: KindWideString, wide: s} }

// Ptr is a pointer argument for %p. Zero is the null pointer.
func Ptr(p uintptr) Arg { return Arg{kind: KindPointer, raw: uint64(p)} }

// Count is the destination of a %n directive.
func Count(p *int) Arg { return Arg{kind: KindCount, cnt: p} }

// Args is a cursor over a collected argument list. Conversions consume
// arguments in order; each request checks the variant of the next argument.
type Args struct {
	list   []Arg
	next   int
	coerce bool
}

// NewArgs returns a cursor over args.
func NewArgs(args ...Arg) *Args {
	return &Args{list: args}
}

// StringArgs returns a cursor over textual arguments, as found on a command
// line. Each string is converted when a conversion asks for it: integers and
// pointers are parsed with base prefixes (0x, 0, 0b) recognized, and a
// leading quote yields the code of the following character.
func StringArgs(args []string) *Args {
	list := make([]Arg, len(args))
	for i, s := range args {
		list[i] = Str(s)
	}
	return &Args{list: list, coerce: true}
}

// Remaining reports how many arguments have not been consumed.
func (a *Args) Remaining() int { return len(a.list) - a.next }

func (a *Args) take(want string) (Arg, int, error) {
	if a.next >= len(a.list) {
		return Arg{}, a.next, fmt.Errorf("%w: argument %d (%s)", ErrMissingArg, a.next+1, want)
	}
	i := a.next
	a.next++
	return a.list[i], i, nil
}

func mismatch(i int, want string, got Arg) error {
	return &ArgError{Index: i, Want: want, Got: got.kind, Bits: int(got.bits)}
}

// integer returns the raw bits of the next integer argument, checked against
// the promoted width of l.
func (a *Args) integer(l Length, want string) (uint64, error) {
	arg, i, err := a.take(want)
	if err != nil {
		return 0, err
	}
	switch {
	case (arg.kind == KindInt || arg.kind == KindUint) && int(arg.bits) <= l.promotedBits():
		return arg.raw, nil
	case a.coerce && arg.kind == KindString:
		v, err := parseInteger(arg.str)
		if err != nil {
			return 0, fmt.Errorf("%w: argument %d: %q is not an integer", ErrBadArgument, i+1, arg.str)
		}
		return v, nil
	default:
		return 0, mismatch(i, want, arg)
	}
}

// Signed reads the next argument as a signed integer of the width selected by
// l, sign-extended to 64 bits.
func (a *Args) Signed(l Length) (int64, error) {
	v, err := a.integer(l, "signed integer for length '"+l.String()+"'")
	if err != nil {
		return 0, err
	}
	return signExtend(v, l.naturalBits()), nil
}

// Unsigned reads the next argument as an unsigned integer of the width
// selected by l.
func (a *Args) Unsigned(l Length) (uint64, error) {
	v, err := a.integer(l, "unsigned integer for length '"+l.String()+"'")
	if err != nil {
		return 0, err
	}
	return truncate(v, l.naturalBits()), nil
}

// Int reads the next argument as a C int. Field widths and precisions given
// as '*' use it.
func (a *Args) Int() (int, error) {
	v, err := a.integer(LengthNone, "int")
	if err != nil {
		return 0, err
	}
	return int(signExtend(v, 32)), nil
}

// Char reads the next argument as a character: a byte for LengthNone (C's
// int converted to unsigned char) and a code point for LengthL (wint_t).
func (a *Args) Char(l Length) (rune, error) {
	if a.coerce && a.next < len(a.list) && a.list[a.next].kind == KindString {
		arg, _, _ := a.take("character")
		if arg.str == "" {
			return 0, nil
		}
		if l == LengthL {
			r, _ := utf8.DecodeRuneInString(arg.str)
			return r, nil
		}
		return rune(arg.str[0]), nil
	}
	if l == LengthL {
		v, err := a.integer(LengthNone, "wide character")
		return rune(signExtend(v, 32)), err
	}
	v, err := a.integer(LengthNone, "character")
	return rune(byte(v)), err
}

// Str reads the next argument as a narrow string.
func (a *Args) Str() (string, error) {
	arg, i, err := a.take("string")
	if err != nil {
		return "", err
	}
	if arg.kind != KindString {
		return "", mismatch(i, "string", arg)
	}
	return arg.str, nil
}

// WideStr reads the next argument as a wide string.
func (a *Args) WideStr() ([]rune, error) {
	arg, i, err := a.take("wide string")
	if err != nil {
		return nil, err
	}
	switch {
	case arg.kind == KindWideString:
		return arg.wide, nil
	case a.coerce && arg.kind == KindString:
		return []rune(arg.str), nil
	default:
		return nil, mismatch(i, "wide string", arg)
	}
}

// Pointer reads the next argument as a pointer value.
func (a *Args) Pointer() (uintptr, error) {
	arg, i, err := a.take("pointer")
	if err != nil {
		return 0, err
	}
	switch {
	case arg.kind == KindPointer:
		return uintptr(arg.raw), nil
	case a.coerce && arg.kind == KindString:
		v, err := parseInteger(arg.str)
		if err != nil {
			return 0, fmt.Errorf("%w: argument %d: %q is not an address", ErrBadArgument, i+1, arg.str)
		}
		return uintptr(v), nil
	default:
		return 0, mismatch(i, "pointer", arg)
	}
}

// Counter reads the next argument as the destination of %n.
func (a *Args) Counter() (*int, error) {
	arg, i, err := a.take("count pointer")
	if err != nil {
		return nil, err
	}
	if arg.kind != KindCount || arg.cnt == nil {
		return nil, mismatch(i, "count pointer", arg)
	}
	return arg.cnt, nil
}

func parseInteger(s string) (uint64, error) {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') {
		r, _ := utf8.DecodeRuneInString(s[1:])
		return uint64(r), nil
	}
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return uint64(v), nil
	}
	return strconv.ParseUint(s, 0, 64)
}

func signExtend(v uint64, bits int) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

func truncate(v uint64, bits int) uint64 {
	if bits >= 64 {
		return v
	}
	return v & (1<<bits - 1)
}
