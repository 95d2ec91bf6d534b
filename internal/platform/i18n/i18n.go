// Package i18n defines the languages the site is published in.
//
// The site speaks three languages. Each has a short site code shown in the
// language switcher (EN, RU, UA), a BCP 47 tag used for negotiation and
// message printers, and a catalog locale naming its message files.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Code identifies a supported site language by its BCP 47 base.
type Code string

const (
	English   Code = "en"
	Russian   Code = "ru"
	Ukrainian Code = "uk"
)

var supported = []Code{English, Russian, Ukrainian}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
	language.Ukrainian,
})

// Supported returns the supported codes in switcher order.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// SupportedTags returns the language tags for Supported.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		out = append(out, code.Tag())
	}
	return out
}

// Default returns the fallback language.
func Default() Code {
	return English
}

// Tag returns the language tag for c.
func (c Code) Tag() language.Tag {
	switch c {
	case Russian:
		return language.Russian
	case Ukrainian:
		return language.Ukrainian
	default:
		return language.English
	}
}

// Label returns the switcher label for c.
func (c Code) Label() string {
	switch c {
	case Russian:
		return "RU"
	case Ukrainian:
		return "UA"
	default:
		return "EN"
	}
}

// Locale returns the catalog locale for c.
func (c Code) Locale() string {
	switch c {
	case Russian:
		return "ru-RU"
	case Ukrainian:
		return "uk-UA"
	default:
		return "en-US"
	}
}

// String returns the code value.
func (c Code) String() string {
	return string(c)
}

// ParseCode resolves a user supplied language value.
//
// Site labels (EN, RU, UA), codes and full tags such as "ru-RU" are accepted.
func ParseCode(value string) (Code, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if strings.EqualFold(value, "ua") {
		return Ukrainian, true
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, code := range supported {
		if base.String() == string(code) {
			return code, true
		}
	}
	return "", false
}

// Normalize coerces unknown values to the default language.
func Normalize(value string) Code {
	if code, ok := ParseCode(value); ok {
		return code
	}
	return Default()
}

// MatchTags picks the best supported language for a preference list.
func MatchTags(tags []language.Tag) Code {
	if len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return Default()
	}
	return supported[index]
}
