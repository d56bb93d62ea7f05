package tpf

import (
	"sync"
)

// PointerPrefix is written before the digits of a non-null %p.
const PointerPrefix = "(void *)0x"

type binding struct {
	spec  byte
	flags string
	conv  ConvFunc
}

func standardBindings() []binding {
	return []binding{
		{'%', "", convPercent},
		{'c', " +-", convChar},
		{'d', " +-0", convSigned},
		{'i', " +-0", convSigned},
		{'n', "", convCount},
		{'p', " +-", convPointer},
		{'s', " +-", convString},
		{'u', " +-0", convUnsigned},
		{'x', " +-0#", convHex},
		{'X', " +-0#", convHexUpper},
	}
}

func register(c *Context, bindings []binding) error {
	for _, b := range bindings {
		if err := c.Register(b.spec, b.flags, b.conv); err != nil {
			return err
		}
	}
	return nil
}

// RegisterStandard registers %, c, d, i, n, p, s, u, x and X on c. It fails
// if any of them is already taken.
func RegisterStandard(c *Context) error {
	return register(c, standardBindings())
}

// NewStandard returns a context with the standard specifiers registered.
func NewStandard() *Context {
	c := NewContext()
	// The standard set registers into an empty context without conflicts.
	_ = RegisterStandard(c)
	return c
}

var (
	builtinOnce sync.Once
	builtinCtx  *Context
)

// builtin returns the context the package uses to render its own messages
// and diagnostics: the standard and extended sets. It is never mutated after
// construction.
func builtin() *Context {
	builtinOnce.Do(func() {
		builtinCtx = NewStandard()
		_ = RegisterExtended(builtinCtx)
	})
	return builtinCtx
}

func badLength(s *State) error {
	return s.Fail(ErrBadLength, "'%s': length modifier not valid for conversion '%c'", Str(s.Length().String()), Byte(s.Spec()))
}

func convPercent(s *State, _ *Args) error {
	s.WriteString("%")
	return nil
}

func convChar(s *State, args *Args) error {
	switch s.Length() {
	case LengthNone:
		r, err := args.Char(LengthNone)
		if err != nil {
			return err
		}
		s.FormatString(string([]byte{byte(r)}))
		return nil
	case LengthL:
		r, err := args.Char(LengthL)
		if err != nil {
			return err
		}
		return s.FormatWide([]rune{r})
	default:
		return badLength(s)
	}
}

func convSigned(s *State, args *Args) error {
	switch s.Length() {
	case LengthBigL, LengthZ:
		return badLength(s)
	}
	v, err := args.Signed(s.Length())
	if err != nil {
		return err
	}
	mag, neg := signedValue(v)
	return s.FormatInteger(mag, neg, IntFormat{Base: 10, Digits: lowerDigits, Signed: true})
}

func readUnsigned(s *State, args *Args) (uint64, error) {
	switch s.Length() {
	case LengthBigL, LengthT:
		return 0, badLength(s)
	}
	return args.Unsigned(s.Length())
}

func convUnsigned(s *State, args *Args) error {
	v, err := readUnsigned(s, args)
	if err != nil {
		return err
	}
	return s.FormatInteger(v, false, IntFormat{Base: 10, Digits: lowerDigits})
}

// convBase converts an unsigned value in base; the '#' flag writes prefix.
func convBase(s *State, args *Args, base int, digits, prefix string) error {
	v, err := readUnsigned(s, args)
	if err != nil {
		return err
	}
	f := IntFormat{Base: base, Digits: digits}
	if s.HasFlag('#') {
		f.Prefix = prefix
	}
	return s.FormatInteger(v, false, f)
}

func convHex(s *State, args *Args) error      { return convBase(s, args, 16, lowerDigits, "0x") }
func convHexUpper(s *State, args *Args) error { return convBase(s, args, 16, upperDigits, "0X") }

func convCount(s *State, args *Args) error {
	if s.Length() != LengthNone {
		return badLength(s)
	}
	p, err := args.Counter()
	if err != nil {
		return err
	}
	*p = s.Pos()
	return nil
}

func convPointer(s *State, args *Args) error {
	if s.Length() != LengthNone {
		return badLength(s)
	}
	p, err := args.Pointer()
	if err != nil {
		return err
	}
	if p == 0 {
		s.ClearPrecision()
		s.FormatString("NULL")
		return nil
	}
	s.ClearPrecision()
	return s.FormatInteger(uint64(p), false, IntFormat{Base: 16, Digits: upperDigits, Prefix: PointerPrefix})
}

func convString(s *State, args *Args) error {
	switch s.Length() {
	case LengthNone:
		str, err := args.Str()
		if err != nil {
			return err
		}
		s.FormatString(str)
		return nil
	case LengthL:
		rs, err := args.WideStr()
		if err != nil {
			return err
		}
		return s.FormatWide(rs)
	default:
		return badLength(s)
	}
}
