package tpf

// Length is a directive's length modifier. It selects the width of the
// argument a numeric conversion reads.
type Length uint8

const (
	LengthNone Length = iota
	LengthHH          // hh: char
	LengthH           // h: short
	LengthL           // l: long, wint_t, wchar_t *
	LengthLL          // ll: long long
	LengthBigL        // L: long double (no built-in conversion accepts it)
	LengthJ           // j: intmax_t
	LengthZ           // z: size_t
	LengthT           // t: ptrdiff_t
)

var lengthTokens = [...]string{
	LengthNone: "",
	LengthHH:   "hh",
	LengthH:    "h",
	LengthL:    "l",
	LengthLL:   "ll",
	LengthBigL: "L",
	LengthJ:    "j",
	LengthZ:    "z",
	LengthT:    "t",
}

// String returns the modifier as written in a directive. LengthNone is "".
func (l Length) String() string {
	if int(l) < len(lengthTokens) {
		return lengthTokens[l]
	}
	return "?"
}

// promotedBits is the widest argument a modifier reads after C's default
// argument promotions.
func (l Length) promotedBits() int {
	switch l {
	case LengthNone, LengthHH, LengthH:
		return 32
	default:
		return 64
	}
}

// naturalBits is the width a value is truncated to before conversion.
func (l Length) naturalBits() int {
	switch l {
	case LengthHH:
		return 8
	case LengthH:
		return 16
	case LengthNone:
		return 32
	default:
		return 64
	}
}

// parseLength reads a length modifier at the start of p and returns it with
// the number of bytes consumed.
func parseLength(p string) (Length, int) {
	if p == "" {
		return LengthNone, 0
	}
	switch p[0] {
	case 'j':
		return LengthJ, 1
	case 'z':
		return LengthZ, 1
	case 't':
		return LengthT, 1
	case 'L':
		return LengthBigL, 1
	case 'h':
		if len(p) > 1 && p[1] == 'h' {
			return LengthHH, 2
		}
		return LengthH, 1
	case 'l':
		if len(p) > 1 && p[1] == 'l' {
			return LengthLL, 2
		}
		return LengthL, 1
	default:
		return LengthNone, 0
	}
}
