// file: internal/search/search_test.go
// version: 1.0.0
// guid: 2fb9fa13-369f-435b-9977-f2f4a33d709d

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	id     string
	fields Fields
}

func (d doc) SearchFields() Fields { return d.fields }

func ventusTalk() doc {
	return doc{id: "a", fields: Fields{
		Title:       "Ventus-Talk",
		Description: "chat app",
		Tags:        []string{"Firestore", "React"},
	}}
}

func TestSearchTitleSubstring(t *testing.T) {
	results := Search([]doc{ventusTalk()}, "ventus")
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Record.id)
	assert.Equal(t, 90, results[0].Score)
	require.Len(t, results[0].Matches, 1)
	assert.Equal(t, Match{FieldLabel: "Title", Text: "Ventus-Talk", Score: 90}, results[0].Matches[0])
}

func TestSearchTitleExact(t *testing.T) {
	results := Search([]doc{ventusTalk()}, "Ventus-Talk")
	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, "Title", results[0].Matches[0].FieldLabel)
	assert.Equal(t, 100, results[0].Matches[0].Score)
}

func TestSearchFuzzyTechnology(t *testing.T) {
	records := []doc{{id: "d", fields: Fields{Title: "Deploy kit", Tags: []string{"Docker"}}}}
	results := Search(records, "dcoker")
	require.Len(t, results, 1)
	assert.Equal(t, []Match{{FieldLabel: "Technology", Text: "Docker", Score: 60}}, results[0].Matches)
	assert.Equal(t, 60, results[0].Score)
}

func TestSearchBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n", "!!!"} {
		results := Search([]doc{ventusTalk()}, q)
		assert.NotNil(t, results, "query %q", q)
		assert.Empty(t, results, "query %q", q)
	}
}

func TestSearchExcludesRecordsWithoutMatches(t *testing.T) {
	records := []doc{
		ventusTalk(),
		{id: "b", fields: Fields{Title: "Shogi App", Description: "board game", Tags: []string{"Swift"}}},
	}
	results := Search(records, "firestore")
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Record.id)

	assert.Empty(t, Search(records, "kubernetes"))
}

func TestSearchFeatureLabels(t *testing.T) {
	records := []doc{{id: "f", fields: Fields{
		Title: "Ventus-Talk",
		Features: []FeatureField{
			{Heading: "Core Features", Details: []string{"Push notifications via Service Workers"}},
			{Heading: "User Experience", Details: []string{"Offline message caching"}},
		},
	}}}
	results := Search(records, "service workers")
	require.Len(t, results, 1)
	require.Len(t, results[0].Matches, 1)
	assert.Equal(t, "Feature: Core Features", results[0].Matches[0].FieldLabel)
	assert.Equal(t, "Push notifications via Service Workers", results[0].Matches[0].Text)
	assert.Equal(t, 80, results[0].Matches[0].Score)
}

func TestSearchKeepsTopThreeInVisitOrder(t *testing.T) {
	records := []doc{{id: "m", fields: Fields{
		Title:       "Chat tools",
		Description: "A chat client",
		Tags:        []string{"chat", "Chatterbox"},
		Features: []FeatureField{
			{Heading: "Core", Details: []string{"group chat", "chat export"}},
		},
	}}}
	results := Search(records, "chat")
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, 100, r.Score)
	require.Len(t, r.Matches, MaxMatches)
	// exact tag (100), title (90), then the first 80 in visit order: description
	assert.Equal(t, Match{FieldLabel: "Technology", Text: "chat", Score: 100}, r.Matches[0])
	assert.Equal(t, Match{FieldLabel: "Title", Text: "Chat tools", Score: 90}, r.Matches[1])
	assert.Equal(t, Match{FieldLabel: "Description", Text: "A chat client", Score: 80}, r.Matches[2])
}

func TestSearchRanking(t *testing.T) {
	records := []doc{
		{id: "substring", fields: Fields{Title: "Other", Description: "wordpress theme"}},
		{id: "exact", fields: Fields{Title: "Press"}},
		{id: "boundary", fields: Fields{Title: "Other", Description: "press release"}},
		{id: "boundary2", fields: Fields{Title: "Other", Description: "the press"}},
	}
	results := Search(records, "press")
	require.Len(t, results, 4)
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Record.id
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
		}
	}
	assert.Equal(t, []string{"exact", "boundary", "boundary2", "substring"}, ids)
}

func TestSearchIsRepeatable(t *testing.T) {
	records := []doc{ventusTalk()}
	first := Search(records, "react")
	second := Search(records, "react")
	assert.Equal(t, first, second)

	// Results do not share match storage across calls.
	first[0].Matches[0].Score = -1
	assert.Equal(t, 100, Search(records, "react")[0].Matches[0].Score)
}

func TestLimit(t *testing.T) {
	records := []doc{
		{id: "1", fields: Fields{Title: "go"}},
		{id: "2", fields: Fields{Title: "go tools"}},
		{id: "3", fields: Fields{Title: "golang"}},
	}
	results := Search(records, "go")
	require.Len(t, results, 3)
	assert.Len(t, Limit(results, 2), 2)
	assert.Len(t, Limit(results, 0), 3)
	assert.Len(t, Limit(results, 10), 3)
}
