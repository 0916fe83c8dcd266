// file: internal/content/registry.go
// version: 1.1.0
// guid: 43deca5a-b82e-4af3-b660-7bc7d0569d95

package content

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/jdfalk/folio/internal/locale"
)

var (
	// ErrEmptyID is returned when a record has no ID.
	ErrEmptyID = errors.New("record has empty id")
	// ErrDuplicateID is returned when two records share an ID.
	ErrDuplicateID = errors.New("duplicate record id")
)

// Record is the capability every stored variant R shares: a stable key, a
// listing order, a merge into its display view V and a deep copy.
type Record[R, V any] interface {
	Key() string
	SortKey() string
	Localize(lang locale.Language) V
	Clone() R
}

// Registry is a read-only map from ID to canonical record. It keeps deep
// copies of its input and hands out deep copies, so nothing outside can
// change it and it is safe for concurrent use.
type Registry[R Record[R, V], V any] struct {
	byID  map[string]R
	order []string
}

// Typed registries for each record variant.
type (
	ProjectRegistry    = Registry[Project, ProjectView]
	PageRegistry       = Registry[Page, PageView]
	ExperienceRegistry = Registry[Experience, ExperienceView]
)

// NewRegistry indexes copies of records by ID. Listing order is sort key
// descending, then ID ascending.
func NewRegistry[R Record[R, V], V any](records []R) (*Registry[R, V], error) {
	r := &Registry[R, V]{
		byID:  make(map[string]R, len(records)),
		order: make([]string, 0, len(records)),
	}
	for i, rec := range records {
		id := rec.Key()
		if id == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyID)
		}
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		r.byID[id] = rec.Clone()
		r.order = append(r.order, id)
	}
	slices.SortFunc(r.order, func(a, b string) int {
		if c := cmp.Compare(r.byID[b].SortKey(), r.byID[a].SortKey()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return r, nil
}

// NewProjectRegistry builds a ProjectRegistry.
func NewProjectRegistry(projects []Project) (*ProjectRegistry, error) {
	return NewRegistry[Project, ProjectView](projects)
}

// NewPageRegistry builds a PageRegistry.
func NewPageRegistry(pages []Page) (*PageRegistry, error) {
	return NewRegistry[Page, PageView](pages)
}

// NewExperienceRegistry builds an ExperienceRegistry.
func NewExperienceRegistry(experiences []Experience) (*ExperienceRegistry, error) {
	return NewRegistry[Experience, ExperienceView](experiences)
}

// Get returns a copy of the canonical record for id. Lookup is exact and
// case-sensitive; a miss returns false.
func (r *Registry[R, V]) Get(id string) (R, bool) {
	var zero R
	if r == nil {
		return zero, false
	}
	rec, ok := r.byID[id]
	if !ok {
		return zero, false
	}
	return rec.Clone(), true
}

// Localized returns the display view of id in lang.
func (r *Registry[R, V]) Localized(id string, lang locale.Language) (V, bool) {
	var zero V
	if r == nil {
		return zero, false
	}
	rec, ok := r.byID[id]
	if !ok {
		return zero, false
	}
	return rec.Localize(lang), true
}

// All returns every record localized to lang in listing order.
func (r *Registry[R, V]) All(lang locale.Language) []V {
	if r == nil {
		return []V{}
	}
	views := make([]V, 0, len(r.order))
	for _, id := range r.order {
		views = append(views, r.byID[id].Localize(lang))
	}
	return views
}

// Records returns copies of the canonical records in listing order.
func (r *Registry[R, V]) Records() []R {
	if r == nil {
		return []R{}
	}
	out := make([]R, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// IDs returns the record IDs in listing order.
func (r *Registry[R, V]) IDs() []string {
	if r == nil {
		return []string{}
	}
	return slices.Clone(r.order)
}

// Len reports the number of records.
func (r *Registry[R, V]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
