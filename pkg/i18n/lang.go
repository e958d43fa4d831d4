package i18n

import (
	"slices"
	"strings"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// NormalizeLanguage lowercases a language tag, drops any encoding suffix and
// uses "-" as the region separator: "de_DE.UTF-8" becomes "de-de".
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i != -1 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(strings.ToLower(lang), "_", "-")
}

// MatchLanguage picks the supported language for lang. An exact match wins,
// then the base language ("pt-br" matches "pt").
func MatchLanguage(lang string, supported []string) (string, bool) {
	lang = NormalizeLanguage(lang)
	if lang == "" {
		return "", false
	}
	if slices.Contains(supported, lang) {
		return lang, true
	}
	base, _, found := strings.Cut(lang, "-")
	if found && slices.Contains(supported, base) {
		return base, true
	}
	return "", false
}
