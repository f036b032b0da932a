// Package locale holds the user-facing text for every supported language and
// picks a language for a request.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a supported language.
type Locale string

const (
	Indonesian Locale = "id"
	English    Locale = "en"
)

// Default is used when nothing else matches.
const Default = Indonesian

var supported = []Locale{Indonesian, English}

// Supported returns the supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse validates a locale name such as "id", "en" or "en-US".
func Parse(s string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", s, err)
	}
	base, _ := tag.Base()
	for _, l := range supported {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Matcher picks the best supported locale for an Accept-Language header.
type Matcher struct {
	fallback Locale
	locales  []Locale
	matcher  language.Matcher
}

// NewMatcher creates a Matcher that prefers fallback when the header does
// not name a supported language.
func NewMatcher(fallback Locale) *Matcher {
	locales := []Locale{fallback}
	for _, l := range supported {
		if l != fallback {
			locales = append(locales, l)
		}
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(string(l)))
	}
	return &Matcher{
		fallback: fallback,
		locales:  locales,
		matcher:  language.NewMatcher(tags),
	}
}

// Match returns the locale for the given Accept-Language value.
func (m *Matcher) Match(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return m.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return m.fallback
	}
	_, idx, conf := m.matcher.Match(prefs...)
	if conf == language.No {
		return m.fallback
	}
	return m.locales[idx]
}
