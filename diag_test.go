package tpf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/tpf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterRender(t *testing.T) {
	t.Parallel()
	const format = "%c\t%c\n\x01\x02\x03%c\n%zc\x04"
	_, err := tpf.NewStandard().Sprintf(format, tpf.Byte('a'), tpf.Byte('b'), tpf.Byte('c'), tpf.Byte('d'))
	require.ErrorIs(t, err, tpf.ErrBadLength)

	var buf bytes.Buffer
	assert.True(t, tpf.NewReporter(&buf).Report(err))

	want := "ERROR:\n" +
		`  "%c\t%c\n\001\002\003%c\n%zc\004"` + "\n" +
		strings.Repeat(" ", 27) + "^\n" +
		"  'z': length modifier not valid for conversion 'c'\n"
	assert.Equal(t, want, buf.String())
}

func TestReporterCaret(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []tpf.Arg
		caret  int
	}{
		"first byte":     {format: "%y", caret: 3},
		"after literal":  {format: "%d items, %q", args: []tpf.Arg{tpf.Int(2)}, caret: 13},
		"after quote":    {format: `say "%y"`, caret: 3 + 6},
		"after tab":      {format: "\t%y", caret: 3 + 2},
		"after high bit": {format: "\xff%y", caret: 3 + 4},
		"incomplete":     {format: "abc%", caret: 6},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tpf.NewStandard().Sprintf(tt.format, tt.args...)
			var de *tpf.DirectiveError
			require.ErrorAs(t, err, &de)
			lines := strings.Split(string(tpf.NewReporter(nil).Render(de)), "\n")
			require.Len(t, lines, 5)
			assert.Equal(t, strings.Repeat(" ", tt.caret)+"^", lines[2])
		})
	}
}

func TestReporterEscapes(t *testing.T) {
	t.Parallel()
	_, err := tpf.NewStandard().Sprintf("\"quoted\"\x7f\n%y")
	var de *tpf.DirectiveError
	require.ErrorAs(t, err, &de)
	out := string(tpf.NewReporter(nil).Render(de))
	assert.Contains(t, out, `  "\"quoted\"\177\n%y"`)
}

func TestReporterIgnoresOtherErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := tpf.NewReporter(&buf)

	_, err := tpf.NewStandard().Fprintf(&failAfterN{n: 1}, "abc")
	require.ErrorIs(t, err, tpf.ErrShortWrite)
	assert.False(t, r.Report(err))
	assert.False(t, r.Report(nil))
	assert.Empty(t, buf.String())

	var nilReporter *tpf.Reporter
	assert.False(t, nilReporter.Report(err))
}

func TestReporterColor(t *testing.T) {
	t.Parallel()
	_, err := tpf.NewStandard().Sprintf("%y")
	var de *tpf.DirectiveError
	require.ErrorAs(t, err, &de)

	plain := string((&tpf.Reporter{}).Render(de))
	colored := string((&tpf.Reporter{Color: true}).Render(de))
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "ERROR:")
	assert.Contains(t, colored, "'y': no formatter known for conversion\n")
}

func TestDirectiveErrorString(t *testing.T) {
	t.Parallel()
	_, err := tpf.NewStandard().Sprintf("abc%y")
	require.Error(t, err)
	assert.Equal(t, "tpf: 'y': no formatter known for conversion (directive at offset 3)", err.Error())
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "directive", tpf.KindDirective.String())
	assert.Equal(t, "numeric", tpf.KindNumeric.String())
	assert.Equal(t, "conversion", tpf.KindConversion.String())
	assert.Equal(t, "unknown", tpf.ErrorKind(42).String())
}
