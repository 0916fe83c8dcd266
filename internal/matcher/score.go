// file: internal/matcher/score.go
// version: 1.0.0
// guid: 488f48d5-3313-4d17-9438-a7ea8f93ff58

package matcher

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Relevance tiers. The first rule that applies wins.
const (
	ScoreNone         = 0
	ScoreFuzzy        = 60
	ScoreSubstring    = 70
	ScoreWordBoundary = 80
	ScoreTitle        = 90
	ScoreExact        = 100
)

// LabelTitle is the field label that earns the title tier on a substring hit.
const LabelTitle = "Title"

// Query is a normalized search query ready to be scored against many fields.
// The zero value matches nothing.
type Query struct {
	raw        string
	normalized string
	boundary   *regexp.Regexp
	maxEdits   int
}

// NewQuery normalizes q once so it can be scored against many candidates.
func NewQuery(q string) Query {
	n := Normalize(q)
	if n == "" {
		return Query{raw: q}
	}
	return Query{
		raw:        q,
		normalized: n,
		boundary:   regexp.MustCompile(`\b` + regexp.QuoteMeta(n) + `\b`),
		maxEdits:   utf8.RuneCountInString(n) / 3,
	}
}

// Blank reports whether the query normalizes to nothing.
func (q Query) Blank() bool {
	return q.normalized == ""
}

// Normalized returns the normalized query text.
func (q Query) Normalized() string {
	return q.normalized
}

// String returns the query as it was given.
func (q Query) String() string {
	return q.raw
}

// Score rates candidate against the query for the field named fieldLabel.
//
//	normalized equality                 → 100
//	Title field containing query        → 90
//	query at word boundaries            → 80
//	query anywhere                      → 70
//	a word within len(query)/3 edits    → 60
//	otherwise                           → 0
func (q Query) Score(fieldLabel, candidate string) int {
	if q.Blank() {
		return ScoreNone
	}
	text := Normalize(candidate)

	if text == q.normalized {
		return ScoreExact
	}
	contains := strings.Contains(text, q.normalized)
	if fieldLabel == LabelTitle && contains {
		return ScoreTitle
	}
	if contains && q.boundary.MatchString(text) {
		return ScoreWordBoundary
	}
	if contains {
		return ScoreSubstring
	}
	for _, w := range words(text) {
		if Distance(w, q.normalized) <= q.maxEdits {
			return ScoreFuzzy
		}
	}
	return ScoreNone
}

// Score is a convenience for scoring a single candidate against query.
func Score(fieldLabel, candidate, query string) int {
	return NewQuery(query).Score(fieldLabel, candidate)
}
