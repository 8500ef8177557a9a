// SPDX-License-Identifier: MIT
package specs

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/hemesh/core"
)

//go:embed defaults/*.toml
var defaultsFS embed.FS

// Sentinel errors for spec documents.
var (
	// ErrUnknownTable indicates a document table name outside the kind enum.
	ErrUnknownTable = errors.New("specs: unknown table name")
	// ErrBadDefault indicates a column default that is not a scalar
	// bool, integer or float.
	ErrBadDefault = errors.New("specs: unsupported default value")
)

// Planar returns the canned defaults for a flat 2-D epithelium.
func Planar() *core.Spec { return mustEmbedded("planar") }

// Sheet returns the canned defaults for a 2-D tissue folded in 3-D
// space, including edge normal columns.
func Sheet() *core.Spec { return mustEmbedded("sheet") }

// Bulk returns the canned defaults for a cell-bearing 3-D tissue.
func Bulk() *core.Spec { return mustEmbedded("bulk") }

// mustEmbedded parses one of the compiled-in documents. They are build
// assets; failing to parse one is a programming error.
func mustEmbedded(name string) *core.Spec {
	f, err := defaultsFS.Open("defaults/" + name + ".toml")
	if err != nil {
		panic(fmt.Sprintf("specs: embedded %s: %v", name, err))
	}
	defer f.Close()
	spec, err := Parse(f)
	if err != nil {
		panic(fmt.Sprintf("specs: embedded %s: %v", name, err))
	}
	return spec
}

// Parse reads a TOML spec document into a core.Spec.
//
// Tables are visited in lexicographic order, so a malformed document
// fails deterministically.
func Parse(r io.Reader) (*core.Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	var raw map[string]map[string]any
	if err = toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	spec := core.NewSpec()
	for _, name := range names {
		if name == "settings" {
			for key, val := range raw[name] {
				spec.Settings[key] = normalizeSetting(val)
			}
			continue
		}
		kind, kerr := core.ParseKind(name)
		if kerr != nil {
			return nil, fmt.Errorf("Parse: table %q: %w", name, ErrUnknownTable)
		}
		tbl := spec.Table(kind)
		cols := make([]string, 0, len(raw[name]))
		for col := range raw[name] {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			def, derr := normalizeDefault(raw[name][col])
			if derr != nil {
				return nil, fmt.Errorf("Parse: table %q, column %q: %w", name, col, derr)
			}
			tbl[col] = def
		}
	}
	return spec, nil
}

// normalizeDefault maps a decoded TOML scalar onto the column-default
// types the tables understand.
func normalizeDefault(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return t, nil
	default:
		return nil, fmt.Errorf("%v (%T): %w", v, v, ErrBadDefault)
	}
}

// normalizeSetting keeps settings free-form but folds TOML integers
// onto int for ergonomic comparisons.
func normalizeSetting(v any) any {
	if t, ok := v.(int64); ok {
		return int(t)
	}
	return v
}
