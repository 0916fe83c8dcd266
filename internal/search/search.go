// file: internal/search/search.go
// version: 1.0.0
// guid: 90e7d2e1-e1f1-4228-a92e-156fc1d0d078

package search

import (
	"cmp"
	"slices"

	"github.com/jdfalk/folio/internal/matcher"
)

// MaxMatches is how many field hits are kept per record.
const MaxMatches = 3

// Field labels reported on matches.
const (
	LabelTitle       = matcher.LabelTitle
	LabelDescription = "Description"
	LabelTechnology  = "Technology"
	FeaturePrefix    = "Feature: "
)

// FeatureLabel is the label reported for a detail line under heading.
// The heading is used verbatim so it keeps its display casing.
func FeatureLabel(heading string) string {
	return FeaturePrefix + heading
}

// FeatureField is a heading with its detail lines.
type FeatureField struct {
	Heading string
	Details []string
}

// Fields is the already-localized text of a record that search visits,
// in visit order: title, description, tags, then feature details.
type Fields struct {
	Title       string
	Description string
	Tags        []string
	Features    []FeatureField
}

// Searchable is anything that can expose its searchable text.
type Searchable interface {
	SearchFields() Fields
}

// Match is a single scored hit of the query against one field.
type Match struct {
	FieldLabel string `json:"field"`
	Text       string `json:"text"`
	Score      int    `json:"score"`
}

// Result is a record with its best matches. Score is the highest match score.
type Result[T Searchable] struct {
	Record  T
	Matches []Match
	Score   int
}

// Search scores every field of every record against query and returns the
// records with at least one hit, best first. Ties keep input order.
// A blank query returns an empty slice.
func Search[T Searchable](records []T, query string) []Result[T] {
	results := make([]Result[T], 0)
	q := matcher.NewQuery(query)
	if q.Blank() {
		return results
	}

	for _, rec := range records {
		matches := matchFields(rec.SearchFields(), q)
		if len(matches) == 0 {
			continue
		}
		slices.SortStableFunc(matches, func(a, b Match) int {
			return cmp.Compare(b.Score, a.Score)
		})
		best := matches[0].Score
		if len(matches) > MaxMatches {
			matches = slices.Clip(matches[:MaxMatches])
		}
		results = append(results, Result[T]{Record: rec, Matches: matches, Score: best})
	}

	slices.SortStableFunc(results, func(a, b Result[T]) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return results
}

func matchFields(f Fields, q matcher.Query) []Match {
	var matches []Match
	add := func(label, text string) {
		if s := q.Score(label, text); s > matcher.ScoreNone {
			matches = append(matches, Match{FieldLabel: label, Text: text, Score: s})
		}
	}

	add(LabelTitle, f.Title)
	add(LabelDescription, f.Description)
	for _, tag := range f.Tags {
		add(LabelTechnology, tag)
	}
	for _, feat := range f.Features {
		label := FeatureLabel(feat.Heading)
		for _, detail := range feat.Details {
			add(label, detail)
		}
	}
	return matches
}

// Limit trims results to at most n entries. n <= 0 keeps everything.
func Limit[T Searchable](results []Result[T], n int) []Result[T] {
	if n <= 0 || len(results) <= n {
		return results
	}
	return results[:n]
}
