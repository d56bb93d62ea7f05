package tpf

import (
	"errors"
	"fmt"
)

// Failed is the count returned by every formatting entry point when the call
// fails. It matches the sentinel returned by C formatting functions.
const Failed = -1

// Sentinel errors for programmatic error handling.
var (
	ErrSpecifierTaken = errors.New("specifier already registered")
	ErrTooManyFlags   = errors.New("too many accepted flags")
	ErrNilConversion  = errors.New("nil conversion")

	ErrUnknownSpecifier = errors.New("no formatter known for conversion")
	ErrInvalidFlag      = errors.New("invalid flag for conversion")

	ErrNegativeWidth     = errors.New("field width cannot be negative")
	ErrWidthTooLarge     = errors.New("field width is too large")
	ErrNegativePrecision = errors.New("precision cannot be negative")
	ErrPrecisionTooLarge = errors.New("precision is too large")

	ErrBadLength   = errors.New("length modifier not valid for conversion")
	ErrArgType     = errors.New("argument type mismatch")
	ErrMissingArg  = errors.New("missing argument")
	ErrBadArgument = errors.New("invalid argument")

	ErrShortWrite    = errors.New("short write")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind classifies a [DirectiveError].
type ErrorKind int

const (
	// KindDirective is a malformed directive: unknown specifier or a flag the
	// specifier does not accept.
	KindDirective ErrorKind = iota
	// KindNumeric is a bad field width or precision.
	KindNumeric
	// KindConversion is a failure reported by a conversion callback, such as
	// a length modifier the conversion does not support or an argument of the
	// wrong type. A '*' width or precision with no int argument to read is
	// one too.
	KindConversion
)

func (k ErrorKind) String() string {
	switch k {
	case KindDirective:
		return "directive"
	case KindNumeric:
		return "numeric"
	case KindConversion:
		return "conversion"
	default:
		return "unknown"
	}
}

// DirectiveError describes a formatting failure tied to one directive of the
// format string. Reporter renders it as a diagnostic.
type DirectiveError struct {
	Kind    ErrorKind
	Format  string // the complete format string
	Offset  int    // byte offset of the directive's '%'
	Spec    byte   // specifier, 0 if not reached
	Message string // rendered message
	Err     error  // sentinel or underlying cause
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("tpf: %s (directive at offset %d)", e.Message, e.Offset)
}

func (e *DirectiveError) Unwrap() error { return e.Err }

// ArgError reports an argument that does not match what a conversion asked
// for.
type ArgError struct {
	Index int    // zero-based position in the argument list
	Want  string // what the conversion requested
	Got   Kind   // what the argument holds
	Bits  int    // declared width of integer arguments
}

func (e *ArgError) Error() string {
	if e.Got == KindInt || e.Got == KindUint {
		return fmt.Sprintf("argument %d: want %s, got %d-bit %s", e.Index+1, e.Want, e.Bits, e.Got)
	}
	return fmt.Sprintf("argument %d: want %s, got %s", e.Index+1, e.Want, e.Got)
}

func (e *ArgError) Unwrap() error { return ErrArgType }
