// file: internal/content/kind.go
// version: 1.0.0
// guid: 52509cc6-a06a-4566-8f24-d5908363b533

package content

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names one of the record variants held by a Catalog.
type Kind string

const (
	KindProject    Kind = "project"
	KindExperience Kind = "experience"
	KindPage       Kind = "page"
)

// ErrUnknownKind is returned when a kind name is not recognized.
var ErrUnknownKind = errors.New("unknown content kind")

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	return []Kind{KindProject, KindExperience, KindPage}
}

// ParseKind accepts singular and plural names ("project", "projects", "works").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "project", "projects", "work", "works":
		return KindProject, nil
	case "experience", "experiences":
		return KindExperience, nil
	case "page", "pages":
		return KindPage, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Plural is the collection name used for directories and routes.
func (k Kind) Plural() string {
	return string(k) + "s"
}

func (k Kind) String() string {
	return string(k)
}
