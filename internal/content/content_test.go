// file: internal/content/content_test.go
// version: 1.0.0
// guid: b1e0c7be-31c5-4304-bdb9-0d31b0d9957d

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/folio/internal/locale"
)

func shogi() Project {
	return Project{
		ID:          "shogi",
		Title:       "Shogi App",
		Description: "A board game for two players",
		TechStack:   []string{"Swift", "SpriteKit"},
		Features: []Feature{
			{Title: "Play", Details: []string{"Local matches", "Undo moves"}},
			{Title: "Learn", Details: []string{"Tutorial mode"}},
		},
		Highlights: []Highlight{
			{Title: "Downloads", Value: "10k", Description: "Total installs"},
			{Title: "Rating", Value: "4.8", Description: "App Store average"},
		},
		Architecture: &Architecture{Diagram: "arch.png", Description: "MVVM"},
		Featured:     true,
		Date:         "2023-04",
		Localized: map[locale.Language]ProjectOverlay{
			locale.Japanese: {Title: StringPtr("将棋アプリ")},
		},
	}
}

func TestLocalizeTitleOverrideKeepsDescription(t *testing.T) {
	p := shogi()
	v := p.Localize(locale.Japanese)
	assert.Equal(t, "将棋アプリ", v.Title)
	assert.Equal(t, p.Description, v.Description)
	assert.Equal(t, p.Features, v.Features)
}

func TestLocalizeCanonicalProjection(t *testing.T) {
	p := shogi()
	v := p.Localize(locale.English)
	assert.Equal(t, p.Title, v.Title)
	assert.Equal(t, p.Description, v.Description)
	assert.Equal(t, p.TechStack, v.TechStack)
	assert.Equal(t, p.Features, v.Features)
	assert.Equal(t, p.Highlights, v.Highlights)
	assert.Equal(t, *p.Architecture, *v.Architecture)
	assert.Equal(t, p.Date, v.Date)
	assert.True(t, v.Featured)
}

func TestLocalizeWithoutOverlayFallsBack(t *testing.T) {
	p := shogi()
	p.Localized = nil
	assert.Equal(t, p.Localize(locale.English), p.Localize(locale.Japanese))
}

func TestLocalizeIndexedArrays(t *testing.T) {
	p := shogi()
	p.Localized = map[locale.Language]ProjectOverlay{
		locale.Japanese: {
			Description: StringPtr("二人用のボードゲーム"),
			Features: []FeatureOverlay{
				{Title: StringPtr("対局")},
			},
			Highlights: []HighlightOverlay{
				{Description: StringPtr("総インストール数")},
				{Title: StringPtr("評価")},
				{Title: StringPtr("ignored")},
			},
			Architecture: &ArchitectureOverlay{Description: StringPtr("MVVM 構成")},
		},
	}

	v := p.Localize(locale.Japanese)
	assert.Equal(t, "Shogi App", v.Title)
	assert.Equal(t, "二人用のボードゲーム", v.Description)

	require.Len(t, v.Features, 2)
	assert.Equal(t, Feature{Title: "対局", Details: []string{"Local matches", "Undo moves"}}, v.Features[0])
	assert.Equal(t, p.Features[1], v.Features[1])

	require.Len(t, v.Highlights, 2)
	assert.Equal(t, Highlight{Title: "Downloads", Value: "10k", Description: "総インストール数"}, v.Highlights[0])
	assert.Equal(t, Highlight{Title: "評価", Value: "4.8", Description: "App Store average"}, v.Highlights[1])

	require.NotNil(t, v.Architecture)
	assert.Equal(t, "MVVM 構成", v.Architecture.Description)
	assert.Equal(t, "arch.png", v.Architecture.Diagram)
}

func TestLocalizeFeatureDetailsReplaceWhole(t *testing.T) {
	p := shogi()
	p.Localized = map[locale.Language]ProjectOverlay{
		locale.Japanese: {Features: []FeatureOverlay{{Details: []string{"ローカル対局"}}}},
	}
	v := p.Localize(locale.Japanese)
	assert.Equal(t, Feature{Title: "Play", Details: []string{"ローカル対局"}}, v.Features[0])
}

func TestLocalizeArchitectureOverlayWithoutCanonical(t *testing.T) {
	p := shogi()
	p.Architecture = nil
	p.Localized = map[locale.Language]ProjectOverlay{
		locale.Japanese: {Architecture: &ArchitectureOverlay{Description: StringPtr("構成")}},
	}
	assert.Nil(t, p.Localize(locale.Japanese).Architecture)
}

func TestLocalizeIsIdempotent(t *testing.T) {
	p := shogi()
	assert.Equal(t, p.Localize(locale.Japanese), p.Localize(locale.Japanese))
}

func TestLocalizeDoesNotAliasStorage(t *testing.T) {
	p := shogi()
	v := p.Localize(locale.Japanese)
	v.TechStack[0] = "changed"
	v.Features[0].Details[0] = "changed"
	v.Highlights[0].Title = "changed"
	v.Architecture.Description = "changed"

	assert.Equal(t, "Swift", p.TechStack[0])
	assert.Equal(t, "Local matches", p.Features[0].Details[0])
	assert.Equal(t, "Downloads", p.Highlights[0].Title)
	assert.Equal(t, "MVVM", p.Architecture.Description)
}

func TestPageLocalizeBySectionKey(t *testing.T) {
	page := Page{
		ID:          "about",
		Title:       "About",
		Description: "Who I am",
		Sections: []Section{
			{Key: "bio", Title: "Bio", Content: "Engineer in Tokyo"},
			{Key: "go", Name: "Go", Category: "language"},
		},
		Localized: map[locale.Language]PageOverlay{
			locale.Japanese: {
				Title:    StringPtr("概要"),
				Sections: map[string]SectionOverlay{"bio": {Content: StringPtr("東京のエンジニア")}},
			},
		},
	}

	v := page.Localize(locale.Japanese)
	assert.Equal(t, "概要", v.Title)
	assert.Equal(t, "Who I am", v.Description)
	assert.Equal(t, Section{Key: "bio", Title: "Bio", Content: "東京のエンジニア"}, v.Sections[0])
	assert.Equal(t, page.Sections[1], v.Sections[1])
	assert.Equal(t, "Engineer in Tokyo", page.Sections[0].Content)

	fields := page.Localize(locale.English).SearchFields()
	require.Len(t, fields.Features, 2)
	assert.Equal(t, "Bio", fields.Features[0].Heading)
	assert.Equal(t, "go", fields.Features[1].Heading)
	assert.Equal(t, []string{"Go"}, fields.Features[1].Details)
}

func TestExperienceLocalizeNestedDetails(t *testing.T) {
	e := Experience{
		ID:          "acme",
		Title:       "Backend Engineer",
		Year:        2022,
		Month:       4,
		Description: "Payments team",
		TechStack:   []string{"Go"},
		Details: []Detail{{
			Title:   "Work",
			Content: []string{"Built APIs"},
			SubDetails: []SubDetail{
				{Title: "Infra", Content: []string{"Kubernetes"}},
				{Title: "Ops", Content: []string{"On-call"}},
			},
		}},
		Localized: map[locale.Language]ExperienceOverlay{
			locale.Japanese: {Details: []DetailOverlay{{
				Title:      StringPtr("業務"),
				SubDetails: []SubDetailOverlay{{Title: StringPtr("基盤")}},
			}}},
		},
	}

	v := e.Localize(locale.Japanese)
	assert.Equal(t, "Backend Engineer", v.Title)
	require.Len(t, v.Details, 1)
	d := v.Details[0]
	assert.Equal(t, "業務", d.Title)
	assert.Equal(t, []string{"Built APIs"}, d.Content)
	assert.Equal(t, SubDetail{Title: "基盤", Content: []string{"Kubernetes"}}, d.SubDetails[0])
	assert.Equal(t, SubDetail{Title: "Ops", Content: []string{"On-call"}}, d.SubDetails[1])
	assert.Equal(t, "2022-04", e.SortKey())

	fields := v.SearchFields()
	assert.Equal(t, []string{"Go"}, fields.Tags)
	require.Len(t, fields.Features, 3)
	assert.Equal(t, "基盤", fields.Features[1].Heading)
}
