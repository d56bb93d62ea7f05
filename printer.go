package tpf

import (
	"io"
)

// Printer layers a failure policy over a Context. Formatting errors are
// always returned; a Printer can additionally render them through a Reporter
// and panic on them.
type Printer struct {
	Context  *Context
	Reporter *Reporter // nil disables diagnostics
	Panic    bool      // panic with the error after reporting it
}

// NewPrinter returns a Printer over c that reports to diag. diag may be nil.
func NewPrinter(c *Context, diag io.Writer) *Printer {
	p := &Printer{Context: c}
	if diag != nil {
		p.Reporter = NewReporter(diag)
	}
	return p
}

// Fprintf is [Context.Fprintf] with the printer's failure policy.
func (p *Printer) Fprintf(w io.Writer, format string, args ...Arg) (int, error) {
	return p.Vfprintf(w, format, NewArgs(args...))
}

// Vfprintf is [Context.Vfprintf] with the printer's failure policy.
func (p *Printer) Vfprintf(w io.Writer, format string, args *Args) (int, error) {
	n, err := p.Context.Vfprintf(w, format, args)
	return n, p.handle(err)
}

// Sprintf is [Context.Sprintf] with the printer's failure policy.
func (p *Printer) Sprintf(format string, args ...Arg) (string, error) {
	s, err := p.Context.Sprintf(format, args...)
	return s, p.handle(err)
}

// Snprintf is [Context.Snprintf] with the printer's failure policy.
func (p *Printer) Snprintf(dst []byte, format string, args ...Arg) (int, error) {
	n, err := p.Context.Snprintf(dst, format, args...)
	return n, p.handle(err)
}

func (p *Printer) handle(err error) error {
	if err == nil {
		return nil
	}
	p.Reporter.Report(err)
	if p.Panic {
		panic(err)
	}
	return err
}
