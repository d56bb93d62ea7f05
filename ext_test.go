package tpf_test

import (
	"testing"

	"github.com/bjaus/tpf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extended(t *testing.T) *tpf.Context {
	t.Helper()
	ctx := tpf.NewStandard()
	require.NoError(t, tpf.RegisterExtended(ctx))
	return ctx
}

func TestExtendedConversions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []tpf.Arg
		want   string
	}{
		"octal":            {format: "%o", args: []tpf.Arg{tpf.Uint(8)}, want: "10"},
		"octal alt":        {format: "%#o", args: []tpf.Arg{tpf.Uint(8)}, want: "010"},
		"octal long":       {format: "%lo", args: []tpf.Arg{tpf.ULong(1 << 33)}, want: "100000000000"},
		"octal escape":     {format: "\\%03hho", args: []tpf.Arg{tpf.UChar(1)}, want: "\\001"},
		"binary":           {format: "%b", args: []tpf.Arg{tpf.Uint(5)}, want: "101"},
		"binary alt":       {format: "%#b", args: []tpf.Arg{tpf.Uint(5)}, want: "0b101"},
		"binary zero pad":  {format: "%08b", args: []tpf.Arg{tpf.Uint(5)}, want: "00000101"},
		"binary left":      {format: "%-6b|", args: []tpf.Arg{tpf.Uint(5)}, want: "101   |"},
		"binary byte":      {format: "%hhb", args: []tpf.Arg{tpf.Int(-1)}, want: "11111111"},
		"hexdump":          {format: "%.4r", args: []tpf.Arg{tpf.Str("\x01\xab\xff\x10")}, want: "01ABFF10"},
		"hexdump grouped":  {format: "%!.4r", args: []tpf.Arg{tpf.Str("\x01\xab\xff\x10")}, want: "01AB FF10"},
		"hexdump odd":      {format: "%!.3r", args: []tpf.Arg{tpf.Str("abc")}, want: "6162 63"},
		"hexdump prefix":   {format: "%.2r", args: []tpf.Arg{tpf.Str("hello")}, want: "6865"},
		"hexdump empty":    {format: "[%.0r]", args: []tpf.Arg{tpf.Str("abc")}, want: "[]"},
		"hexdump star":     {format: "%.*r", args: []tpf.Arg{tpf.Int(1), tpf.Str("\n")}, want: "0A"},
		"columns":          {format: "%W", args: []tpf.Arg{tpf.Str("日本")}, want: "日本"},
		"columns right":    {format: "%6W|", args: []tpf.Arg{tpf.Str("日本")}, want: "  日本|"},
		"columns left":     {format: "%-6W|", args: []tpf.Arg{tpf.Str("日本")}, want: "日本  |"},
		"columns truncate": {format: "%.3W|", args: []tpf.Arg{tpf.Str("日本語")}, want: "日|"},
		"columns both":     {format: "%5.3W|", args: []tpf.Arg{tpf.Str("日本語")}, want: "   日|"},
		"columns ascii":    {format: "%-4.2W|", args: []tpf.Arg{tpf.Str("abc")}, want: "ab  |"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := extended(t).Sprintf(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExtendedErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format  string
		args    []tpf.Arg
		target  error
		message string
	}{
		"hexdump without precision": {
			format:  "%r", args: []tpf.Arg{tpf.Str("abc")}, target: tpf.ErrBadArgument,
			message: "hex dump needs a precision",
		},
		"hexdump too long": {
			format:  "%.5r", args: []tpf.Arg{tpf.Str("abc")}, target: tpf.ErrBadArgument,
			message: "5: hex dump longer than its 3 byte argument",
		},
		"hexdump length": {
			format:  "%.2hr", args: []tpf.Arg{tpf.Str("abc")}, target: tpf.ErrBadLength,
			message: "'h': length modifier not valid for conversion 'r'",
		},
		"hexdump integer": {
			format: "%.1r", args: []tpf.Arg{tpf.Int(1)}, target: tpf.ErrArgType,
		},
		"columns length": {
			format: "%lW", args: []tpf.Arg{tpf.Str("abc")}, target: tpf.ErrBadLength,
		},
		"octal long double": {
			format: "%Lo", args: []tpf.Arg{tpf.Uint(1)}, target: tpf.ErrBadLength,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := extended(t).Sprintf(tt.format, tt.args...)
			require.ErrorIs(t, err, tt.target)
			var de *tpf.DirectiveError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tpf.KindConversion, de.Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, de.Message)
			}
		})
	}
}

func TestExtendedFlags(t *testing.T) {
	t.Parallel()
	ctx := extended(t)
	_, err := ctx.Sprintf("%#W", tpf.Str("x"))
	require.ErrorIs(t, err, tpf.ErrInvalidFlag)
	_, err = ctx.Sprintf("%-.1r", tpf.Str("x"))
	require.ErrorIs(t, err, tpf.ErrInvalidFlag)
}

func TestRegisterExtendedTwice(t *testing.T) {
	t.Parallel()
	err := tpf.RegisterExtended(extended(t))
	require.ErrorIs(t, err, tpf.ErrSpecifierTaken)
}

func TestExtendedAloneLeavesStandardOut(t *testing.T) {
	t.Parallel()
	ctx := tpf.NewContext()
	require.NoError(t, tpf.RegisterExtended(ctx))
	assert.Equal(t, "Wbor", string(ctx.Specifiers()))
	_, err := ctx.Sprintf("%d", tpf.Int(1))
	require.ErrorIs(t, err, tpf.ErrUnknownSpecifier)
}

func TestConversionsByName(t *testing.T) {
	t.Parallel()
	convs := tpf.Conversions()
	for _, name := range []string{
		"percent", "char", "signed", "unsigned", "hex", "HEX", "octal",
		"binary", "count", "pointer", "string", "hexdump", "columns",
	} {
		assert.NotNil(t, convs[name], name)
	}

	ctx := tpf.NewContext()
	require.NoError(t, ctx.Register('v', " +-0", convs["signed"]))
	require.NoError(t, ctx.Register('y', "#", convs["HEX"]))
	out, err := ctx.Sprintf("%+v %#y", tpf.Int(3), tpf.Uint(171))
	require.NoError(t, err)
	assert.Equal(t, "+3 0XAB", out)

	delete(convs, "signed")
	assert.NotNil(t, tpf.Conversions()["signed"])
}
