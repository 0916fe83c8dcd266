// file: internal/content/project.go
// version: 1.1.0
// guid: bf9cf29a-4718-437b-8d5e-8ac950f5e926

package content

import (
	"slices"

	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/search"
)

// Link points at an external resource for a record (repository, live demo, ...).
type Link struct {
	Type  string `json:"type" yaml:"type" toml:"type"`
	URL   string `json:"url" yaml:"url" toml:"url"`
	Title string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
}

// Feature is a heading with its detail lines.
type Feature struct {
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Details []string `json:"details" yaml:"details" toml:"details"`
}

// Highlight is a headline figure shown on a project page.
type Highlight struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Value       string `json:"value" yaml:"value" toml:"value"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Architecture describes a project's system diagram.
type Architecture struct {
	Diagram     string `json:"diagram" yaml:"diagram" toml:"diagram"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Project is a portfolio work in the canonical language.
type Project struct {
	ID           string        `json:"id" yaml:"id" toml:"id"`
	Title        string        `json:"title" yaml:"title" toml:"title"`
	Description  string        `json:"description" yaml:"description" toml:"description"`
	ShortIntro   string        `json:"shortIntro,omitempty" yaml:"shortIntro,omitempty" toml:"shortIntro,omitempty"`
	TechStack    []string      `json:"techStack" yaml:"techStack" toml:"techStack"`
	Features     []Feature     `json:"features" yaml:"features" toml:"features"`
	Images       []string      `json:"images,omitempty" yaml:"images,omitempty" toml:"images,omitempty"`
	Highlights   []Highlight   `json:"highlights,omitempty" yaml:"highlights,omitempty" toml:"highlights,omitempty"`
	Architecture *Architecture `json:"architecture,omitempty" yaml:"architecture,omitempty" toml:"architecture,omitempty"`
	DemoVideo    string        `json:"demoVideo,omitempty" yaml:"demoVideo,omitempty" toml:"demoVideo,omitempty"`
	Featured     bool          `json:"featured,omitempty" yaml:"featured,omitempty" toml:"featured,omitempty"`
	Links        []Link        `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`
	Date         string        `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`

	Localized map[locale.Language]ProjectOverlay `json:"-" yaml:"-" toml:"-"`
}

// FeatureOverlay replaces a feature's heading and/or details.
type FeatureOverlay struct {
	Title   *string  `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

// HighlightOverlay replaces a highlight's title and/or description.
type HighlightOverlay struct {
	Title       *string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// ArchitectureOverlay replaces the architecture description.
type ArchitectureOverlay struct {
	Description *string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// ProjectOverlay is the partial second-language form of a Project.
// A nil field is absent and falls back to the canonical value.
type ProjectOverlay struct {
	Title        *string              `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description  *string              `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	ShortIntro   *string              `json:"shortIntro,omitempty" yaml:"shortIntro,omitempty" toml:"shortIntro,omitempty"`
	Features     []FeatureOverlay     `json:"features,omitempty" yaml:"features,omitempty" toml:"features,omitempty"`
	Highlights   []HighlightOverlay   `json:"highlights,omitempty" yaml:"highlights,omitempty" toml:"highlights,omitempty"`
	Architecture *ArchitectureOverlay `json:"architecture,omitempty" yaml:"architecture,omitempty" toml:"architecture,omitempty"`
}

// ProjectView is a Project resolved to one display language.
type ProjectView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ShortIntro   string        `json:"short_intro,omitempty"`
	TechStack    []string      `json:"tech_stack"`
	Features     []Feature     `json:"features"`
	Images       []string      `json:"images,omitempty"`
	Highlights   []Highlight   `json:"highlights,omitempty"`
	Architecture *Architecture `json:"architecture,omitempty"`
	DemoVideo    string        `json:"demo_video,omitempty"`
	Featured     bool          `json:"featured"`
	Links        []Link        `json:"links,omitempty"`
	Date         string        `json:"date,omitempty"`
}

// Key returns the project ID.
func (p Project) Key() string { return p.ID }

// SortKey orders projects by date.
func (p Project) SortKey() string { return p.Date }

// Localize resolves p for lang. Canonical, or a language with no overlay,
// yields the canonical projection. Otherwise each field present in the
// overlay replaces its canonical counterpart.
func (p Project) Localize(lang locale.Language) ProjectView {
	v := ProjectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ShortIntro:  p.ShortIntro,
		TechStack:   slices.Clone(p.TechStack),
		Features:    overlayEach(p.Features, nil, cloneFeature, applyFeature),
		Images:      slices.Clone(p.Images),
		Highlights:  slices.Clone(p.Highlights),
		DemoVideo:   p.DemoVideo,
		Featured:    p.Featured,
		Links:       slices.Clone(p.Links),
		Date:        p.Date,
	}
	if p.Architecture != nil {
		arch := *p.Architecture
		v.Architecture = &arch
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
	v.ShortIntro = pick(o.ShortIntro, p.ShortIntro)
	v.Features = overlayEach(p.Features, o.Features, cloneFeature, applyFeature)
	v.Highlights = overlayEach(p.Highlights, o.Highlights, cloneHighlight, applyHighlight)
	if v.Architecture != nil && o.Architecture != nil {
		v.Architecture.Description = pick(o.Architecture.Description, v.Architecture.Description)
	}
	return v
}

// Clone returns a deep copy of p sharing no slices, maps or pointers.
func (p Project) Clone() Project {
	c := p
	c.TechStack = slices.Clone(p.TechStack)
	c.Features = cloneEach(p.Features, cloneFeature)
	c.Images = slices.Clone(p.Images)
	c.Highlights = slices.Clone(p.Highlights)
	c.Architecture = clonePtr(p.Architecture)
	c.Links = slices.Clone(p.Links)
	c.Localized = cloneOverlays(p.Localized, cloneProjectOverlay)
	return c
}

func cloneProjectOverlay(o ProjectOverlay) ProjectOverlay {
	c := ProjectOverlay{
		Title:       clonePtr(o.Title),
		Description: clonePtr(o.Description),
		ShortIntro:  clonePtr(o.ShortIntro),
		Features: cloneEach(o.Features, func(f FeatureOverlay) FeatureOverlay {
			return FeatureOverlay{Title: clonePtr(f.Title), Details: slices.Clone(f.Details)}
		}),
		Highlights: cloneEach(o.Highlights, func(h HighlightOverlay) HighlightOverlay {
			return HighlightOverlay{Title: clonePtr(h.Title), Description: clonePtr(h.Description)}
		}),
	}
	if o.Architecture != nil {
		c.Architecture = &ArchitectureOverlay{Description: clonePtr(o.Architecture.Description)}
	}
	return c
}

func cloneFeature(f Feature) Feature {
	return Feature{Title: f.Title, Details: slices.Clone(f.Details)}
}

func applyFeature(f Feature, o FeatureOverlay) Feature {
	return Feature{Title: pick(o.Title, f.Title), Details: pickSlice(o.Details, f.Details)}
}

func cloneHighlight(h Highlight) Highlight { return h }

func applyHighlight(h Highlight, o HighlightOverlay) Highlight {
	h.Title = pick(o.Title, h.Title)
	h.Description = pick(o.Description, h.Description)
	return h
}

// SearchFields exposes title, description, tech stack and feature details.
func (v ProjectView) SearchFields() search.Fields {
	features := make([]search.FeatureField, 0, len(v.Features))
	for _, f := range v.Features {
		features = append(features, search.FeatureField{Heading: f.Title, Details: f.Details})
	}
	return search.Fields{
		Title:       v.Title,
		Description: v.Description,
		Tags:        v.TechStack,
		Features:    features,
	}
}

// Summary is the kind-independent header of the view.
func (v ProjectView) Summary() Summary {
	return Summary{Kind: KindProject, ID: v.ID, Title: v.Title, Description: v.Description}
}
