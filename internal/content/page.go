// file: internal/content/page.go
// version: 1.1.0
// guid: d48bb2cb-399d-4d80-8098-082eafe71452

package content

import (
	"maps"
	"slices"

	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/search"
)

// Section is one keyed block of a page (a bio paragraph, a skill, ...).
type Section struct {
	Key      string `json:"key" yaml:"key" toml:"key"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Content  string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
}

// Page is a standalone page such as "about".
type Page struct {
	ID          string    `json:"id" yaml:"id" toml:"id"`
	Title       string    `json:"title" yaml:"title" toml:"title"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Sections    []Section `json:"sections,omitempty" yaml:"sections,omitempty" toml:"sections,omitempty"`

	Localized map[locale.Language]PageOverlay `json:"-" yaml:"-" toml:"-"`
}

// SectionOverlay replaces a section's title and/or content.
type SectionOverlay struct {
	Title   *string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Content *string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
}

// PageOverlay is the partial second-language form of a Page.
// Sections are matched by key rather than position.
type PageOverlay struct {
	Title       *string                   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description *string                   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Sections    map[string]SectionOverlay `json:"sections,omitempty" yaml:"sections,omitempty" toml:"sections,omitempty"`
}

// PageView is a Page resolved to one display language.
type PageView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections,omitempty"`
}

// Key returns the page ID.
func (p Page) Key() string { return p.ID }

// SortKey is empty; pages list by ID.
func (p Page) SortKey() string { return "" }

// Localize resolves p for lang.
func (p Page) Localize(lang locale.Language) PageView {
	v := PageView{ID: p.ID, Title: p.Title, Description: p.Description}
	if p.Sections != nil {
		v.Sections = make([]Section, len(p.Sections))
		copy(v.Sections, p.Sections)
	}
	if lang.IsCanonical() {
		return v
	}
	o, ok := p.Localized[lang]
	if !ok {
		return v
	}

	v.Title = pick(o.Title, p.Title)
	v.Description = pick(o.Description, p.Description)
	for i, s := range v.Sections {
		so, ok := o.Sections[s.Key]
		if !ok {
			continue
		}
		v.Sections[i].Title = pick(so.Title, s.Title)
		v.Sections[i].Content = pick(so.Content, s.Content)
	}
	return v
}

// Clone returns a deep copy of p sharing no slices, maps or pointers.
func (p Page) Clone() Page {
	c := p
	c.Sections = slices.Clone(p.Sections)
	c.Localized = cloneOverlays(p.Localized, clonePageOverlay)
	return c
}

func clonePageOverlay(o PageOverlay) PageOverlay {
	c := PageOverlay{Title: clonePtr(o.Title), Description: clonePtr(o.Description)}
	if o.Sections != nil {
		c.Sections = maps.Clone(o.Sections)
		for key, so := range c.Sections {
			c.Sections[key] = SectionOverlay{Title: clonePtr(so.Title), Content: clonePtr(so.Content)}
		}
	}
	return c
}

// SearchFields exposes title, description and each section's text under
// its title (or key when untitled).
func (v PageView) SearchFields() search.Fields {
	features := make([]search.FeatureField, 0, len(v.Sections))
	for _, s := range v.Sections {
		heading := s.Title
		if heading == "" {
			heading = s.Key
		}
		var details []string
		if s.Content != "" {
			details = append(details, s.Content)
		}
		if s.Name != "" {
			details = append(details, s.Name)
		}
		if len(details) > 0 {
			features = append(features, search.FeatureField{Heading: heading, Details: details})
		}
	}
	return search.Fields{Title: v.Title, Description: v.Description, Features: features}
}

// Summary is the kind-independent header of the view.
func (v PageView) Summary() Summary {
	return Summary{Kind: KindPage, ID: v.ID, Title: v.Title, Description: v.Description}
}
