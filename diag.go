package tpf

import (
	"bytes"
	"errors"
	"io"

	"github.com/amterp/color"
)

// Reporter renders formatting failures as diagnostics:
//
//	ERROR:
//	  "%d items, %q"
//	             ^
//	  'q': no formatter known for conversion
//
// The format string is echoed with quotes, newlines, tabs and other
// unprintable bytes escaped, and the caret points at the '%' of the failing
// directive.
type Reporter struct {
	W     io.Writer
	Color bool // highlight the header and caret
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{W: w}
}

// Report renders err if it is, or wraps, a [DirectiveError] and reports
// whether it did. Sink failures carry no diagnostic and are not rendered.
func (r *Reporter) Report(err error) bool {
	var de *DirectiveError
	if r == nil || r.W == nil || !errors.As(err, &de) {
		return false
	}
	_, _ = r.W.Write(r.Render(de))
	return true
}

// Render returns the diagnostic for de.
func (r *Reporter) Render(de *DirectiveError) []byte {
	ctx := builtin()
	var b bytes.Buffer

	b.WriteString(r.paint("ERROR:", color.FgRed, color.Bold))
	b.WriteString("\n  \"")
	col := escapeFormat(&b, ctx, de.Format, de.Offset)
	b.WriteString("\"\n")

	caret, err := ctx.Sprintf("   %*s^", Int(int32(col)), Str(""))
	if err != nil {
		caret = "   ^"
	}
	b.WriteString(r.paint(caret, color.FgGreen, color.Bold))
	b.WriteString("\n  ")
	b.WriteString(de.Message)
	b.WriteString("\n")
	return b.Bytes()
}

// escapeFormat writes format escaped to b and returns the escaped width of
// its first offset bytes.
func escapeFormat(b *bytes.Buffer, ctx *Context, format string, offset int) int {
	col := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		n := 2
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
			n = 1
		default:
			n, _ = ctx.Fprintf(b, "\\%03hho", UChar(c))
		}
		if i < offset {
			col += n
		}
	}
	return col
}

func (r *Reporter) paint(s string, attrs ...color.Attribute) string {
	if !r.Color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
