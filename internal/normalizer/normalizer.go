package normalizer

import (
	"regexp"
	"strings"
)

// tagPattern matches HTML/XML-style tags: an opening angle bracket, any run
// of characters that is not a closing angle bracket, then a closing bracket.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// digitPattern matches maximal runs of ASCII decimal digits.
var digitPattern = regexp.MustCompile(`[0-9]+`)

// punctuation is the fixed set of 32 printable ASCII punctuation characters.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Clean normalizes raw review text for vectorization. The steps are applied
// in a fixed order: lowercase, strip tags, strip digit runs, strip ASCII
// punctuation. Tag stripping must run before punctuation stripping so that
// tag delimiters are removed as tags rather than as stray punctuation.
// Whitespace is never collapsed or trimmed. Non-ASCII characters (accented
// letters, emoji, non-ASCII punctuation) pass through unchanged.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = tagPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
}
