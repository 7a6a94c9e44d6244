package hh

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func normalizeTitle(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// TitleExcluded reports whether a vacancy title matches any configured
// exclude keyword. Both sides are lowercased and stripped of combining
// marks first, so accented variants compare equal.
func TitleExcluded(title string, excludeKeywords []string) bool {
	normalized := normalizeTitle(title)
	for _, kw := range excludeKeywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(normalized, normalizeTitle(kw)) {
			return true
		}
	}
	return false
}
