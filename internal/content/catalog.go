// file: internal/content/catalog.go
// version: 1.1.0
// guid: 77e36126-e1c0-495b-b455-6aa67986cc17

package content

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/search"
)

var (
	// ErrInvalidSlug is returned for a slug that is not lowercase words joined by hyphens.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrDuplicateSlug is returned when a slug is shared or shadows another experience's ID.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Summary is the header every view shares, used for result lists.
type Summary struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// View is a localized record of any kind.
type View interface {
	search.Searchable
	Summary() Summary
}

// Entry is a view tagged with its kind so mixed-kind result lists can be
// searched and rendered together.
type Entry struct {
	Kind Kind
	View View
}

// SearchFields delegates to the wrapped view.
func (e Entry) SearchFields() search.Fields {
	return e.View.SearchFields()
}

// Catalog groups the three registries. It is immutable once built; a
// content reload builds a new Catalog.
type Catalog struct {
	Projects    *ProjectRegistry
	Pages       *PageRegistry
	Experiences *ExperienceRegistry

	// slugs maps experience slugs to IDs
	slugs map[string]string
}

// NewCatalog builds every registry and reports all construction errors together.
func NewCatalog(projects []Project, pages []Page, experiences []Experience) (*Catalog, error) {
	var errs []error
	pr, err := NewProjectRegistry(projects)
	if err != nil {
		errs = append(errs, fmt.Errorf("projects: %w", err))
	}
	pg, err := NewPageRegistry(pages)
	if err != nil {
		errs = append(errs, fmt.Errorf("pages: %w", err))
	}
	experiences, slugs, slugErrs := indexSlugs(experiences)
	for _, err := range slugErrs {
		errs = append(errs, fmt.Errorf("experiences: %w", err))
	}
	ex, err := NewExperienceRegistry(experiences)
	if err != nil {
		errs = append(errs, fmt.Errorf("experiences: %w", err))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Catalog{Projects: pr, Pages: pg, Experiences: ex, slugs: slugs}, nil
}

// indexSlugs defaults each missing slug to the ID and maps slugs to IDs.
// An explicit slug must match slugPattern. A slug may not be shared, nor
// equal the ID of a different experience.
func indexSlugs(experiences []Experience) ([]Experience, map[string]string, []error) {
	out := slices.Clone(experiences)
	ids := make(map[string]bool, len(out))
	for _, e := range out {
		ids[e.ID] = true
	}

	var errs []error
	slugs := make(map[string]string, len(out))
	for i := range out {
		e := &out[i]
		if e.Slug == "" {
			e.Slug = e.ID
		} else if !slugPattern.MatchString(e.Slug) {
			errs = append(errs, fmt.Errorf("%s: %w: %q", e.ID, ErrInvalidSlug, e.Slug))
			continue
		}
		if owner, taken := slugs[e.Slug]; taken && owner != e.ID {
			errs = append(errs, fmt.Errorf("%s: %w: %q already used by %s", e.ID, ErrDuplicateSlug, e.Slug, owner))
			continue
		}
		if e.Slug != e.ID && ids[e.Slug] {
			errs = append(errs, fmt.Errorf("%s: %w: %q is the id of another experience", e.ID, ErrDuplicateSlug, e.Slug))
			continue
		}
		slugs[e.Slug] = e.ID
	}
	return out, slugs, errs
}

// List returns every record of kind localized to lang.
func (c *Catalog) List(kind Kind, lang locale.Language) []View {
	switch kind {
	case KindProject:
		return toViews(c.Projects.All(lang))
	case KindExperience:
		return toViews(c.Experiences.All(lang))
	case KindPage:
		return toViews(c.Pages.All(lang))
	}
	return []View{}
}

func toViews[V View](vs []V) []View {
	out := make([]View, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// Lookup returns the record of kind with id localized to lang. Experiences
// are also found by slug.
func (c *Catalog) Lookup(kind Kind, id string, lang locale.Language) (View, bool) {
	switch kind {
	case KindProject:
		if v, ok := c.Projects.Localized(id, lang); ok {
			return v, true
		}
	case KindExperience:
		if v, ok := c.Experiences.Localized(id, lang); ok {
			return v, true
		}
		if owner, ok := c.slugs[id]; ok {
			if v, ok := c.Experiences.Localized(owner, lang); ok {
				return v, true
			}
		}
	case KindPage:
		if v, ok := c.Pages.Localized(id, lang); ok {
			return v, true
		}
	}
	return nil, false
}

// Featured returns the featured projects localized to lang.
func (c *Catalog) Featured(lang locale.Language) []ProjectView {
	out := []ProjectView{}
	for _, p := range c.Projects.All(lang) {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Entries localizes the given kinds (all kinds when none are given) in
// catalog order: projects, experiences, then pages.
func (c *Catalog) Entries(lang locale.Language, kinds ...Kind) []Entry {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var entries []Entry
	for _, k := range Kinds() {
		if !want[k] {
			continue
		}
		for _, v := range c.List(k, lang) {
			entries = append(entries, Entry{Kind: k, View: v})
		}
	}
	return entries
}

// Search runs a ranked search over the selected kinds in lang.
func (c *Catalog) Search(lang locale.Language, query string, kinds ...Kind) []search.Result[Entry] {
	return search.Search(c.Entries(lang, kinds...), query)
}

// Counts reports the number of records per kind.
func (c *Catalog) Counts() map[Kind]int {
	return map[Kind]int{
		KindProject:    c.Projects.Len(),
		KindExperience: c.Experiences.Len(),
		KindPage:       c.Pages.Len(),
	}
}
