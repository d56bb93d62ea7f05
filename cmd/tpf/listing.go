package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/tpf"
)

var errUnsupportedFormat = errors.New("unsupported list format")

// listFormat selects how --list renders the registered specifiers.
type listFormat string

const (
	listPlain listFormat = "plain"
	listJSON  listFormat = "json"
	listYAML  listFormat = "yaml"
)

var listFormats = []listFormat{listPlain, listJSON, listYAML}

func parseListFormat(s string) (listFormat, error) {
	for _, f := range listFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnsupportedFormat, s)
}

// specifierEntry is one registered specifier as listed.
type specifierEntry struct {
	Spec  string `json:"spec" yaml:"spec"`
	Flags string `json:"flags" yaml:"flags"`
}

func entries(ctx *tpf.Context) []specifierEntry {
	specs := ctx.Specifiers()
	out := make([]specifierEntry, 0, len(specs))
	for _, spec := range specs {
		d, _ := ctx.Lookup(spec)
		out = append(out, specifierEntry{Spec: string([]byte{spec}), Flags: d.Flags})
	}
	return out
}

func writeListing(w io.Writer, ctx *tpf.Context, f listFormat, diag io.Writer) error {
	items := entries(ctx)
	switch f {
	case listJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case listYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writePlain(w, items, diag)
	}
}

// writePlain lists one specifier per line, rendered by the engine itself.
func writePlain(w io.Writer, items []specifierEntry, diag io.Writer) error {
	out := tpf.NewPrinter(tpf.NewStandard(), diag)
	for _, it := range items {
		if _, err := out.Fprintf(w, "%%%s  flags \"%s\"\n", tpf.Str(it.Spec), tpf.Str(it.Flags)); err != nil {
			return err
		}
	}
	return nil
}
