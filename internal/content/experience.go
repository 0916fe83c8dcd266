// file: internal/content/experience.go
// version: 1.1.0
// guid: b0167d43-b973-4360-ac4d-6a7459e91813

package content

import (
	"fmt"
	"slices"

	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/search"
)

// SubDetail is a nested bullet group under a Detail.
type SubDetail struct {
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Content []string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
}

// Detail is one block of an experience entry.
type Detail struct {
	Title      string      `json:"title" yaml:"title" toml:"title"`
	Content    []string    `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	SubDetails []SubDetail `json:"subDetails,omitempty" yaml:"subDetails,omitempty" toml:"subDetails,omitempty"`
}

// Experience is a work-history entry.
type Experience struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Slug        string   `json:"slug,omitempty" yaml:"slug,omitempty" toml:"slug,omitempty"`
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Year        int      `json:"year" yaml:"year" toml:"year"`
	Month       int      `json:"month,omitempty" yaml:"month,omitempty" toml:"month,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	TechStack   []string `json:"techStack,omitempty" yaml:"techStack,omitempty" toml:"techStack,omitempty"`
	Details     []Detail `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
	Links       []Link   `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`

	Localized map[locale.Language]ExperienceOverlay `json:"-" yaml:"-" toml:"-"`
}

// SubDetailOverlay replaces a sub detail's title and/or lines.
type SubDetailOverlay struct {
	Title   *string  `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Content []string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
}

// DetailOverlay replaces parts of a Detail by position.
type DetailOverlay struct {
	Title      *string            `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Content    []string           `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	SubDetails []SubDetailOverlay `json:"subDetails,omitempty" yaml:"subDetails,omitempty" toml:"subDetails,omitempty"`
}

// ExperienceOverlay is the partial second-language form of an Experience.
type ExperienceOverlay struct {
	Title       *string         `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description *string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Details     []DetailOverlay `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

// ExperienceView is an Experience resolved to one display language.
type ExperienceView struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Month       int      `json:"month,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack,omitempty"`
	Details     []Detail `json:"details,omitempty"`
	Links       []Link   `json:"links,omitempty"`
}

// Key returns the experience ID.
func (e Experience) Key() string { return e.ID }

// SortKey orders experiences by year then month, e.g. "2023-04".
func (e Experience) SortKey() string {
	return fmt.Sprintf("%04d-%02d", e.Year, e.Month)
}

// Localize resolves e for lang.
func (e Experience) Localize(lang locale.Language) ExperienceView {
	v := ExperienceView{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Year:        e.Year,
		Month:       e.Month,
		Category:    e.Category,
		Description: e.Description,
		TechStack:   slices.Clone(e.TechStack),
		Details:     overlayEach(e.Details, nil, cloneDetail, applyDetail),
		Links:       slices.Clone(e.Links),
	}
	if lang.IsCanonical() {
		return v
	}
	o, ok := e.Localized[lang]
	if !ok {
		return v
	}

	v.Title = pick(o.Title, e.Title)
	v.Description = pick(o.Description, e.Description)
	v.Details = overlayEach(e.Details, o.Details, cloneDetail, applyDetail)
	return v
}

// Clone returns a deep copy of e sharing no slices, maps or pointers.
func (e Experience) Clone() Experience {
	c := e
	c.TechStack = slices.Clone(e.TechStack)
	c.Details = cloneEach(e.Details, cloneDetail)
	c.Links = slices.Clone(e.Links)
	c.Localized = cloneOverlays(e.Localized, cloneExperienceOverlay)
	return c
}

func cloneExperienceOverlay(o ExperienceOverlay) ExperienceOverlay {
	return ExperienceOverlay{
		Title:       clonePtr(o.Title),
		Description: clonePtr(o.Description),
		Details: cloneEach(o.Details, func(d DetailOverlay) DetailOverlay {
			return DetailOverlay{
				Title:   clonePtr(d.Title),
				Content: slices.Clone(d.Content),
				SubDetails: cloneEach(d.SubDetails, func(s SubDetailOverlay) SubDetailOverlay {
					return SubDetailOverlay{Title: clonePtr(s.Title), Content: slices.Clone(s.Content)}
				}),
			}
		}),
	}
}

func cloneSubDetail(s SubDetail) SubDetail {
	return SubDetail{Title: s.Title, Content: slices.Clone(s.Content)}
}

func applySubDetail(s SubDetail, o SubDetailOverlay) SubDetail {
	return SubDetail{Title: pick(o.Title, s.Title), Content: pickSlice(o.Content, s.Content)}
}

func cloneDetail(d Detail) Detail {
	return Detail{
		Title:      d.Title,
		Content:    slices.Clone(d.Content),
		SubDetails: overlayEach(d.SubDetails, nil, cloneSubDetail, applySubDetail),
	}
}

func applyDetail(d Detail, o DetailOverlay) Detail {
	return Detail{
		Title:      pick(o.Title, d.Title),
		Content:    pickSlice(o.Content, d.Content),
		SubDetails: overlayEach(d.SubDetails, o.SubDetails, cloneSubDetail, applySubDetail),
	}
}

// SearchFields exposes the tech stack as tags and each detail, followed by
// its sub details, as a feature.
func (v ExperienceView) SearchFields() search.Fields {
	var features []search.FeatureField
	for _, d := range v.Details {
		features = append(features, search.FeatureField{Heading: d.Title, Details: d.Content})
		for _, sd := range d.SubDetails {
			features = append(features, search.FeatureField{Heading: sd.Title, Details: sd.Content})
		}
	}
	return search.Fields{
		Title:       v.Title,
		Description: v.Description,
		Tags:        v.TechStack,
		Features:    features,
	}
}

// Summary is the kind-independent header of the view.
func (v ExperienceView) Summary() Summary {
	return Summary{Kind: KindExperience, ID: v.ID, Title: v.Title, Description: v.Description}
}
