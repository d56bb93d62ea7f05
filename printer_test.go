package tpf_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/tpf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterSuccess(t *testing.T) {
	t.Parallel()
	var diag, out bytes.Buffer
	p := tpf.NewPrinter(tpf.NewStandard(), &diag)

	n, err := p.Fprintf(&out, "%s=%d", tpf.Str("n"), tpf.Int(4))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "n=4", out.String())

	s, err := p.Sprintf("%x", tpf.Uint(255))
	require.NoError(t, err)
	assert.Equal(t, "ff", s)

	b := make([]byte, 3)
	n, err = p.Snprintf(b, "%s", tpf.Str("abcd"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "ab\x00", string(b))

	assert.Empty(t, diag.String())
}

func TestPrinterReports(t *testing.T) {
	t.Parallel()
	var diag bytes.Buffer
	p := tpf.NewPrinter(tpf.NewStandard(), &diag)

	n, err := p.Fprintf(&bytes.Buffer{}, "%^d", tpf.Int(1))
	require.ErrorIs(t, err, tpf.ErrInvalidFlag)
	assert.Equal(t, tpf.Failed, n)
	assert.Contains(t, diag.String(), "ERROR:\n")
	assert.Contains(t, diag.String(), "'^': invalid flag for conversion 'd'\n")
}

func TestPrinterWithoutReporter(t *testing.T) {
	t.Parallel()
	p := tpf.NewPrinter(tpf.NewStandard(), nil)
	assert.Nil(t, p.Reporter)
	_, err := p.Sprintf("%y")
	require.ErrorIs(t, err, tpf.ErrUnknownSpecifier)
}

func TestPrinterPanics(t *testing.T) {
	t.Parallel()
	var diag bytes.Buffer
	p := tpf.NewPrinter(tpf.NewStandard(), &diag)
	p.Panic = true

	assert.PanicsWithError(t, "tpf: 'y': no formatter known for conversion (directive at offset 0)", func() {
		_, _ = p.Sprintf("%y")
	})
	assert.Contains(t, diag.String(), "ERROR:")

	assert.NotPanics(t, func() {
		_, _ = p.Sprintf("%d", tpf.Int(1))
	})
}

func TestPrinterPanicsOnShortWrite(t *testing.T) {
	t.Parallel()
	var diag bytes.Buffer
	p := tpf.NewPrinter(tpf.NewStandard(), &diag)
	p.Panic = true

	assert.Panics(t, func() {
		_, _ = p.Fprintf(&errWriter{}, "abc")
	})
	assert.Empty(t, diag.String())
}

func TestPrinterVfprintf(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := &tpf.Printer{Context: tpf.NewStandard()}
	args := tpf.StringArgs([]string{"7", "x"})
	_, err := p.Vfprintf(&out, "%03d %s", args)
	require.NoError(t, err)
	assert.Equal(t, "007 x", out.String())
}
