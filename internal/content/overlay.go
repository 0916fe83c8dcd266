// file: internal/content/overlay.go
// version: 1.1.0
// guid: 107a203e-0eb0-43ee-a90d-81732fdbd1a2

package content

import (
	"slices"

	"github.com/jdfalk/folio/internal/locale"
)

// pick returns the override when present, otherwise the canonical value.
func pick(override *string, canonical string) string {
	if override != nil {
		return *override
	}
	return canonical
}

// pickSlice returns a copy of the override when present, otherwise a copy of canonical.
// A nil override means absent; an empty non-nil override replaces with nothing.
func pickSlice(override, canonical []string) []string {
	if override != nil {
		return slices.Clone(override)
	}
	return slices.Clone(canonical)
}

// overlayEach copies base element by element and applies over[i] to base[i]
// for every index both slices have. Extra overlay elements are ignored and
// missing ones keep the canonical element.
func overlayEach[T, O any](base []T, over []O, clone func(T) T, apply func(T, O) T) []T {
	if base == nil {
		return nil
	}
	out := make([]T, len(base))
	for i, b := range base {
		out[i] = clone(b)
		if i < len(over) {
			out[i] = apply(out[i], over[i])
		}
	}
	return out
}

// clonePtr returns a fresh copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneEach deep-copies s with clone, keeping nil as nil.
func cloneEach[T any](s []T, clone func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = clone(v)
	}
	return out
}

// cloneOverlays deep-copies a per-language overlay map, keeping nil as nil.
func cloneOverlays[O any](m map[locale.Language]O, clone func(O) O) map[locale.Language]O {
	if m == nil {
		return nil
	}
	out := make(map[locale.Language]O, len(m))
	for lang, o := range m {
		out[lang] = clone(o)
	}
	return out
}

// StringPtr is a helper for building overlays in code.
func StringPtr(s string) *string {
	return &s
}
