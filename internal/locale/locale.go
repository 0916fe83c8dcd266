// file: internal/locale/locale.go
// version: 1.0.0
// guid: 87ece48c-020c-40cc-9be7-2c3f10c975ce

package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies one of the display languages content is authored in.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"

	// Canonical is the language every record is fully populated in.
	Canonical = English
)

// ErrUnsupportedLanguage is returned for tags that do not resolve to a supported language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var supported = []Language{English, Japanese}

// matcher orders tags the same way as supported; index 0 is the fallback.
var matcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// Supported returns the languages content may be requested in, canonical first.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// IsCanonical reports whether l is the canonical language.
func (l Language) IsCanonical() bool {
	return l == Canonical
}

func (l Language) String() string {
	return string(l)
}

// Parse resolves a BCP 47 style tag ("ja", "ja-JP", "en_US") to a supported language.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	base, _ := tag.Base()
	for _, l := range supported {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Negotiate picks the best supported language for an Accept-Language header value.
// Anything unparseable or unmatched falls back to Canonical.
func Negotiate(acceptLanguage string) Language {
	if l, ok := Match(acceptLanguage); ok {
		return l
	}
	return Canonical
}

// Match is Negotiate without the fallback: ok is false when the header is
// empty, unparseable, or names no supported language.
func Match(acceptLanguage string) (Language, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return supported[idx], true
}
