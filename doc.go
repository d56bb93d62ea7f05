// Package tpf is an extensible printf-style formatter that does not depend on
// the host C library or on package fmt's verb set.
//
// A [Context] maps specifier bytes to conversions. Each directive of a format
// string is parsed, its flags are checked against the set the specifier
// accepts, and the bound [ConvFunc] writes the converted text:
//
//	ctx := tpf.NewStandard()
//	ctx.Fprintf(os.Stdout, "%-20s (%-5i|%5i)\n", tpf.Str("Justification."), tpf.Int(17), tpf.Int(17))
//
// # Directives
//
// A directive is '%', then flags, field width, precision, length modifier and
// specifier:
//
//	%[flags][width][.precision][length]specifier
//
// Flags are every byte up to the first one that is a letter, a digit other
// than '0', '.', '%' or '*'. Width and precision are decimal numbers or '*',
// which reads an int argument. Length modifiers are hh, h, l, ll, j, z, t and
// L.
//
// # Arguments
//
// Arguments are typed values built with constructors named after C types:
// [Int], [Long], [Uint], [Size], [Str], [WStr], [Ptr], [Count] and so on.
// Conversions read them through [Args], which checks each argument against the
// directive's length modifier instead of reinterpreting memory. An int
// argument satisfies %hhd, %hd and %d; a long is needed for %ld.
//
// # Specifiers
//
// [NewStandard] registers the C set with these accepted flags:
//
//	%   (none)     c   " +-"     d i  " +-0"    n  (none)
//	p   " +-"      s   " +-"     u    " +-0"    x X " +-0#"
//
// [RegisterExtended] adds %o, %b, %r (hex dump) and %W (terminal-column
// aware strings). Custom specifiers are registered with [Context.Register]:
//
//	ctx.Register('B', "#", func(s *tpf.State, args *tpf.Args) error {
//		v, err := args.Unsigned(s.Length())
//		if err != nil {
//			return err
//		}
//		return s.FormatInteger(v, false, tpf.IntFormat{Base: 2, Digits: "01"})
//	})
//
// # Output
//
// Any [io.Writer] is a sink. A short write or write error fails the call with
// [ErrShortWrite]. [Buffer] and [Context.Snprintf] truncate into a fixed
// slice, and [Context.Sprintf] returns a string.
//
// # Errors
//
// Failing calls return [Failed] and an error. Directive problems are
// [*DirectiveError] values carrying the format string and the offset of the
// failing directive; they wrap one of the sentinels:
//
//   - malformed directive: [ErrUnknownSpecifier], [ErrInvalidFlag]
//   - bad width or precision: [ErrNegativeWidth], [ErrWidthTooLarge],
//     [ErrNegativePrecision], [ErrPrecisionTooLarge]
//   - conversion failures: [ErrBadLength], [ErrArgType], [ErrMissingArg],
//     [ErrBadArgument]
//
// A [Reporter] renders them with the format string echoed and a caret under
// the directive. [Printer] combines a context with a reporter and an optional
// panic-on-error policy.
package tpf
