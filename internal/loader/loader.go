// file: internal/loader/loader.go
// version: 1.0.0
// guid: 656283f1-5dcb-4ab7-a19f-e0c38d8dbbb1

// Package loader reads a content bundle directory into a content.Catalog.
//
// Layout:
//
//	<dir>/projects/<id>.{json,yaml,yml,toml}
//	<dir>/experiences/<id>.*
//	<dir>/pages/<id>.*
//	<dir>/i18n/<lang>/<kind dir>/<id>.*   (optional overlay files)
package loader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
)

// OverlayDir is the bundle subdirectory holding per-language overlay files.
const OverlayDir = "i18n"

// ErrInvalidContent wraps every validation failure returned by Load.
var ErrInvalidContent = errors.New("invalid content")

// Report describes what a load read.
type Report struct {
	Dir      string
	Files    []string
	Warnings []string
	Counts   map[content.Kind]int
}

func (r *Report) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	log.Printf("[WARN] %s", msg)
}

// Option configures Load.
type Option func(*options)

type options struct {
	progress func(path string)
}

// WithProgress calls fn with each file path before it is decoded.
func WithProgress(fn func(path string)) Option {
	return func(o *options) { o.progress = fn }
}

// Files lists every content and overlay file under dir that Load reads.
func Files(dir string) ([]string, error) {
	var files []string
	for _, kind := range content.Kinds() {
		found, err := listDir(filepath.Join(dir, kind.Plural()))
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	langs, err := overlayLanguages(dir)
	if err != nil {
		return nil, err
	}
	for _, lang := range langs {
		for _, kind := range content.Kinds() {
			found, err := listDir(filepath.Join(dir, OverlayDir, lang, kind.Plural()))
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		}
	}
	return files, nil
}

// listDir returns supported files directly under dir, sorted. A missing
// directory is empty.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !IsContentFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

func overlayLanguages(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, OverlayDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read overlay directory: %w", err)
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			langs = append(langs, e.Name())
		}
	}
	slices.Sort(langs)
	return langs, nil
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// binding ties one record variant to its file document.
type binding[R any, O any] struct {
	kind     content.Kind
	decode   func(path string) (R, map[string]O, error)
	id       func(*R) *string
	title    func(*R) string
	overlays func(*R) *map[locale.Language]O
}

var projects = binding[content.Project, content.ProjectOverlay]{
	kind: content.KindProject,
	decode: func(path string) (content.Project, map[string]content.ProjectOverlay, error) {
		var doc projectDoc
		err := decodeFile(path, &doc)
		return doc.Project, doc.Localized, err
	},
	id:       func(p *content.Project) *string { return &p.ID },
	title:    func(p *content.Project) string { return p.Title },
	overlays: func(p *content.Project) *map[locale.Language]content.ProjectOverlay { return &p.Localized },
}

var pages = binding[content.Page, content.PageOverlay]{
	kind: content.KindPage,
	decode: func(path string) (content.Page, map[string]content.PageOverlay, error) {
		var doc pageDoc
		err := decodeFile(path, &doc)
		return doc.Page, doc.Localized, err
	},
	id:       func(p *content.Page) *string { return &p.ID },
	title:    func(p *content.Page) string { return p.Title },
	overlays: func(p *content.Page) *map[locale.Language]content.PageOverlay { return &p.Localized },
}

var experiences = binding[content.Experience, content.ExperienceOverlay]{
	kind: content.KindExperience,
	decode: func(path string) (content.Experience, map[string]content.ExperienceOverlay, error) {
		var doc experienceDoc
		err := decodeFile(path, &doc)
		return doc.Experience, doc.Localized, err
	},
	id:       func(e *content.Experience) *string { return &e.ID },
	title:    func(e *content.Experience) string { return e.Title },
	overlays: func(e *content.Experience) *map[locale.Language]content.ExperienceOverlay { return &e.Localized },
}

type state struct {
	dir    string
	opts   options
	report *Report
	errs   []error
	langs  []locale.Language
}

func (s *state) fail(err error) {
	s.errs = append(s.errs, err)
}

func (s *state) visit(path string) {
	s.report.Files = append(s.report.Files, path)
	if s.opts.progress != nil {
		s.opts.progress(path)
	}
}

// Load reads, validates and indexes the bundle at dir. On failure the
// returned error wraps ErrInvalidContent and joins every problem found;
// the report is returned either way.
func Load(dir string, opts ...Option) (*content.Catalog, *Report, error) {
	s := &state{
		dir:    dir,
		report: &Report{Dir: dir, Counts: map[content.Kind]int{}},
	}
	for _, opt := range opts {
		opt(&s.opts)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, s.report, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, s.report, fmt.Errorf("content directory %s is not a directory", dir)
	}

	names, err := overlayLanguages(dir)
	if err != nil {
		return nil, s.report, err
	}
	for _, name := range names {
		lang, err := locale.Parse(name)
		switch {
		case err != nil:
			s.fail(fmt.Errorf("%s: %w", filepath.Join(dir, OverlayDir, name), err))
		case lang.IsCanonical():
			s.fail(fmt.Errorf("%s: overlays for canonical language %q are not allowed", filepath.Join(dir, OverlayDir, name), lang))
		case string(lang) != name:
			s.fail(fmt.Errorf("%s: overlay directory must be named %q", filepath.Join(dir, OverlayDir, name), lang))
		default:
			s.langs = append(s.langs, lang)
		}
	}

	p := loadKind(s, projects)
	e := loadKind(s, experiences)
	g := loadKind(s, pages)

	if len(s.errs) > 0 {
		return nil, s.report, fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(s.errs...))
	}
	catalog, err := content.NewCatalog(p, g, e)
	if err != nil {
		return nil, s.report, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	s.report.Counts = catalog.Counts()
	return catalog, s.report, nil
}

func loadKind[R any, O any](s *state, b binding[R, O]) []R {
	files, err := listDir(filepath.Join(s.dir, b.kind.Plural()))
	if err != nil {
		s.fail(err)
		return nil
	}

	var records []R
	index := map[string]int{}
	for _, path := range files {
		s.visit(path)
		rec, inline, err := b.decode(path)
		if err != nil {
			s.fail(err)
			continue
		}

		id := b.id(&rec)
		if *id == "" {
			*id = baseName(path)
		} else if *id != baseName(path) {
			s.fail(fmt.Errorf("%s: id %q does not match file name", path, *id))
			continue
		}
		if strings.TrimSpace(b.title(&rec)) == "" {
			s.fail(fmt.Errorf("%s: %s %q has empty title", path, b.kind, *id))
		}
		if _, dup := index[*id]; dup {
			s.fail(fmt.Errorf("%s: %w: %q", path, content.ErrDuplicateID, *id))
			continue
		}

		overlays := map[locale.Language]O{}
		for tag, o := range inline {
			lang, err := locale.Parse(tag)
			if err != nil {
				s.fail(fmt.Errorf("%s: localized block: %w", path, err))
				continue
			}
			if lang.IsCanonical() {
				s.fail(fmt.Errorf("%s: localized block for canonical language %q", path, lang))
				continue
			}
			overlays[lang] = o
		}
		if len(overlays) > 0 {
			*b.overlays(&rec) = overlays
		}

		index[*id] = len(records)
		records = append(records, rec)
	}

	for _, lang := range s.langs {
		dir := filepath.Join(s.dir, OverlayDir, string(lang), b.kind.Plural())
		files, err := listDir(dir)
		if err != nil {
			s.fail(err)
			continue
		}
		for _, path := range files {
			s.visit(path)
			var o O
			if err := decodeFile(path, &o); err != nil {
				s.fail(err)
				continue
			}
			id := baseName(path)
			i, ok := index[id]
			if !ok {
				s.fail(fmt.Errorf("%s: overlay for unknown %s %q", path, b.kind, id))
				continue
			}
			m := b.overlays(&records[i])
			if *m == nil {
				*m = map[locale.Language]O{}
			}
			if _, exists := (*m)[lang]; exists {
				s.report.warnf("%s: replaces inline %s overlay of %s %q", path, lang, b.kind, id)
			}
			(*m)[lang] = o
		}
	}
	return records
}
