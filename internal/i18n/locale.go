// Package i18n holds the site's two locales and their message catalogs.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale identifies one of the supported site languages.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
)

var (
	supported = []Locale{English, Chinese}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Chinese})
)

// Supported lists the locales in toggle order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if l == Chinese {
		return language.Chinese
	}
	return language.English
}

// Name returns the locale's name in its own language ("English", "中文").
func (l Locale) Name() string {
	return display.Self.Name(l.Tag())
}

func (l Locale) String() string {
	return string(l)
}

// ParseLocale accepts tags such as "zh", "zh-CN", "en_US.UTF-8" and maps
// them onto a supported locale by base language.
func ParseLocale(s string) (Locale, bool) {
	tag, ok := parseTag(s)
	if !ok {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, true
	case "zh":
		return Chinese, true
	}
	return "", false
}

// Detect picks the best supported locale from POSIX locale environment
// variables, falling back to English.
func Detect(getenv func(string) string) Locale {
	var tags []language.Tag
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		value := getenv(key)
		if value == "" {
			continue
		}
		// LANGUAGE may hold a colon separated preference list.
		for _, part := range strings.Split(value, ":") {
			if tag, ok := parseTag(part); ok {
				tags = append(tags, tag)
			}
		}
	}
	if len(tags) == 0 {
		return English
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return supported[index]
}

func parseTag(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
