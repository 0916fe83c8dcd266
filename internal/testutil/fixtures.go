// file: internal/testutil/fixtures.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

// Package testutil holds the content fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
)

// WriteFile writes body to root/rel, creating parent directories.
func WriteFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// WriteBundle lays out a small content directory in a temp dir and returns
// its path: two projects (one JSON with an inline Japanese title, one YAML)
// and a TOML page.
func WriteBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "projects/shogi.json", `{
  "title": "Shogi App",
  "description": "Play shogi online",
  "techStack": ["Swift"],
  "featured": true,
  "date": "2023-04",
  "localized": {"ja": {"title": "将棋アプリ"}}
}`)
	WriteFile(t, dir, "projects/ventus-talk.yaml", "title: Ventus-Talk\ndescription: chat app\ndate: \"2024-01\"\n")
	WriteFile(t, dir, "pages/about.toml", "title = \"About\"\ndescription = \"Who I am\"\n")
	return dir
}

// Catalog builds an in-memory catalog with the featured "shogi" project
// and the "about" page. withChat adds a newer, unfeatured "chat" project.
func Catalog(t *testing.T, withChat bool) *content.Catalog {
	t.Helper()
	projects := []content.Project{{
		ID:          "shogi",
		Title:       "Shogi App",
		Description: "Play shogi online",
		TechStack:   []string{"Go", "React"},
		Date:        "2023-04",
		Featured:    true,
		Localized: map[locale.Language]content.ProjectOverlay{
			locale.Japanese: {Title: content.StringPtr("将棋アプリ")},
		},
	}}
	if withChat {
		projects = append(projects, content.Project{
			ID:          "chat",
			Title:       "Chat App",
			Description: "Realtime messaging",
			TechStack:   []string{"WebSocket"},
			Date:        "2024-01",
		})
	}
	pages := []content.Page{{ID: "about", Title: "About", Description: "Who I am"}}

	catalog, err := content.NewCatalog(projects, pages, nil)
	require.NoError(t, err)
	return catalog
}
