package hh

import (
	"regexp"
	"strconv"
	"strings"
)

// Vacancy is one posting collected from the search results. Values are set
// once during parsing and never mutated; the enrichment pass builds a copy
// with Description filled in.
type Vacancy struct {
	ID            string `json:"vacancy_id"`
	Title         string `json:"title"`
	WatchersText  string `json:"watchers_text"`
	WatchersCount *int   `json:"watchers_count"`
	Description   string `json:"description,omitempty"`
}

// watchersPlaceholder substitutes for the viewer span when a card does not
// render one; it carries no digits so the parsed count stays nil.
const watchersPlaceholder = "Сейчас смотрят —"

var (
	digitsRegex    = regexp.MustCompile(`(\d+)`)
	vacancyIDRegex = regexp.MustCompile(`/vacancy/(\d+)`)
)

// ParseFirstInt extracts the first run of decimal digits from localized free
// text ("Сейчас смотрят 12" -> 12). Non-breaking spaces are treated as
// regular spaces first, so "1 234" parses as 1, not 1234. Returns nil
// when the text has no digits.
func ParseFirstInt(text string) *int {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, " ", " ")
	m := digitsRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// vacancyIDFromHref pulls the numeric posting ID out of a card link target.
// The empty string means the href does not have the /vacancy/<digits> shape
// and the card should be skipped entirely.
func vacancyIDFromHref(href string) string {
	m := vacancyIDRegex.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}
