package i18n

import (
	"golang.org/x/text/language"
)

// Language is one of the two site languages.
type Language string

const (
	Hebrew  Language = "he"
	English Language = "en"
)

// Hebrew first: it is the site's default language.
var matcher = language.NewMatcher([]language.Tag{
	language.Hebrew,
	language.English,
})

// Match resolves the request language from an explicit override (the
// `lang` query param) and the Accept-Language header, falling back to
// Hebrew.
func Match(explicit, accept string) Language {
	prefs := make([]string, 0, 2)
	if explicit != "" {
		prefs = append(prefs, explicit)
	}
	if accept != "" {
		prefs = append(prefs, accept)
	}
	if len(prefs) == 0 {
		return Hebrew
	}

	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	if base.String() == "en" {
		return English
	}
	return Hebrew
}

// Dir returns the document text direction for the language.
func (l Language) Dir() string {
	if l == Hebrew {
		return "rtl"
	}
	return "ltr"
}
