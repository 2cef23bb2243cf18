package quiz

import (
	"regexp"
	"strings"
)

// NormalizeMode selects how aggressively text is normalized before comparison.
type NormalizeMode int

const (
	// NormalizeStrict strips markup, lowercases and trims.
	NormalizeStrict NormalizeMode = iota

	// NormalizeSmart additionally drops common punctuation and collapses whitespace.
	NormalizeSmart
)

var markupRegex = regexp.MustCompile(`<[^>]*>`)

// smartPunctuation is removed by NormalizeSmart.
var smartPunctuation = strings.NewReplacer(
	".", "", ",", "", ";", "", ":", "", "!", "",
	"?", "", "'", "", `"`, "", "(", "", ")", "",
)

// StripMarkup removes every <...> tag from text.
func StripMarkup(text string) string {
	return markupRegex.ReplaceAllString(text, "")
}

// Normalize prepares text for answer comparison.
func Normalize(text string, mode NormalizeMode) string {
	normalized := strings.ToLower(StripMarkup(text))

	if mode != NormalizeSmart {
		return strings.TrimSpace(normalized)
	}

	normalized = smartPunctuation.Replace(normalized)

	// Fields splits on any whitespace run, which also trims both ends.
	return strings.Join(strings.Fields(normalized), " ")
}
