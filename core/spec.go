// SPDX-License-Identifier: MIT
package core

// Spec declares per-kind column defaults and free-form settings.
//
// Defaults map each element kind to column-name → default-value pairs;
// the column type is inferred from the default's Go type (bool, int or
// float64). Settings carry arbitrary model parameters untouched by the
// tables.
type Spec struct {
	Defaults map[Kind]map[string]any
	Settings map[string]any
}

// NewSpec returns an empty specification.
func NewSpec() *Spec {
	return &Spec{
		Defaults: make(map[Kind]map[string]any),
		Settings: make(map[string]any),
	}
}

// Table returns the defaults map for a kind, creating it when absent.
func (s *Spec) Table(k Kind) map[string]any {
	tbl, ok := s.Defaults[k]
	if !ok {
		tbl = make(map[string]any)
		s.Defaults[k] = tbl
	}
	return tbl
}

// Merge folds other into s: per-kind defaults are overridden or added
// entry by entry, and settings likewise. A nil other is a no-op.
func (s *Spec) Merge(other *Spec) {
	if other == nil {
		return
	}
	for kind, tbl := range other.Defaults {
		dst := s.Table(kind)
		for name, def := range tbl {
			dst[name] = def
		}
	}
	for name, val := range other.Settings {
		if s.Settings == nil {
			s.Settings = make(map[string]any)
		}
		s.Settings[name] = val
	}
}

// Clone returns an independent copy of s. Default and setting values
// are copied as-is; scalar defaults make this a deep copy in practice.
func (s *Spec) Clone() *Spec {
	out := NewSpec()
	out.Merge(s)
	return out
}
