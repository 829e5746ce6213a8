package jsonrepair

import (
	"regexp"
	"strings"
)

// Each fix is an independent, idempotent structural rewrite. The pipeline
// order is a contract: later fixes assume earlier ones have already
// normalized the text (bracket balancing, for example, assumes separators are
// already in place), so reordering can produce worse output.
type fix struct {
	name  string
	apply func(string) string
}

// lightRepairPipeline is the ordered list of structural fixes applied by
// lightRepair.
var lightRepairPipeline = []fix{
	{"normalize_smart_quotes", normalizeSmartQuotes},
	{"quote_single_quoted_strings", quoteSingleQuotedStrings},
	{"quote_unquoted_keys", quoteUnquotedKeys},
	{"fix_missing_colons", fixMissingColons},
	{"fix_missing_commas", fixMissingCommas},
	{"remove_trailing_commas", removeTrailingCommas},
	{"close_unclosed_arrays", closeUnclosedArrays},
}

// lightRepair runs the full fix pipeline in order.
func lightRepair(text string) string {
	for _, f := range lightRepairPipeline {
		text = f.apply(text)
	}
	return text
}

var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, // curly double quotes
	"‘", "'", "’", "'", // curly single quotes
)

// normalizeSmartQuotes replaces typographic quotes, which LLMs emit when they
// echo prose, with their ASCII equivalents so the quoting fixes below can see
// them.
func normalizeSmartQuotes(text string) string {
	return smartQuoteReplacer.Replace(text)
}

var (
	singleQuotedValueRe = regexp.MustCompile(`([:\[{,]\s*)'((?:[^'\\]|\\.)*)'`)
	singleQuotedKeyRe   = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'(\s*:)`)
)

// quoteSingleQuotedStrings rewrites 'single-quoted' keys and values to double
// quotes. Only strings adjacent to structural characters are touched, so
// apostrophes inside already-quoted prose survive.
func quoteSingleQuotedStrings(text string) string {
	text = singleQuotedKeyRe.ReplaceAllString(text, `"$1"$2`)
	text = singleQuotedValueRe.ReplaceAllString(text, `$1"$2"`)
	return text
}

var unquotedKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)

// quoteUnquotedKeys wraps bare object keys in double quotes ({key: 1} -> {"key": 1}).
func quoteUnquotedKeys(text string) string {
	return unquotedKeyRe.ReplaceAllString(text, `$1"$2"$3`)
}

var missingColonRe = regexp.MustCompile(`([{,]\s*"(?:[^"\\]|\\.)*")(\s+)(["{\[])`)

// fixMissingColons inserts the colon between an object key and its value when
// the LLM dropped it ({"key" "value"} -> {"key": "value"}). The key must
// follow '{' or ',' so adjacent array strings are left for the comma fix.
func fixMissingColons(text string) string {
	return missingColonRe.ReplaceAllString(text, `$1: $3`)
}

var (
	adjacentStringsRe  = regexp.MustCompile(`("(?:[^"\\]|\\.)*")[ \t]+(")`)
	adjacentLiteralsRe = regexp.MustCompile(`(\d|true|false|null)[ \t]+(-|\d|"|true|false|null)`)
	adjacentClosersRe  = regexp.MustCompile(`(})(\s*)({)`)
	adjacentArrayRe    = regexp.MustCompile(`(])(\s*)(\[)`)
	closerThenKeyRe    = regexp.MustCompile(`([\]}])[ \t]+(")`)
	valueThenKeyRe     = regexp.MustCompile(`(["\d\]}]|true|false|null)(\s*\n\s*)("(?:[^"\\]|\\.)*"\s*:)`)
)

const maxCommaFixPasses = 10

// fixMissingCommas inserts commas between adjacent literals, between closing
// and opening braces/brackets, and before a quoted key that follows a value on
// a new line. RE2 has no lookahead, so the rewrite consumes the following
// token and must be repeated until the text stops changing.
func fixMissingCommas(text string) string {
	for i := 0; i < maxCommaFixPasses; i++ {
		fixed := adjacentStringsRe.ReplaceAllString(text, `$1, $2`)
		fixed = adjacentLiteralsRe.ReplaceAllString(fixed, `$1, $2`)
		fixed = adjacentClosersRe.ReplaceAllString(fixed, `$1,$2$3`)
		fixed = adjacentArrayRe.ReplaceAllString(fixed, `$1,$2$3`)
		fixed = closerThenKeyRe.ReplaceAllString(fixed, `$1, $2`)
		fixed = valueThenKeyRe.ReplaceAllString(fixed, `$1,$2$3`)
		if fixed == text {
			return fixed
		}
		text = fixed
	}
	return text
}

var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

// removeTrailingCommas strips commas directly before a closing brace/bracket.
func removeTrailingCommas(text string) string {
	return trailingCommaRe.ReplaceAllString(text, `$1`)
}

// closeUnclosedArrays inserts a missing ']' when an array runs into the next
// object key ({"a": [1, 2, "b": 3} -> {"a": [1, 2], "b": 3}). Detection is a
// real scan rather than a regex: a colon encountered while the innermost open
// container is an array means the preceding string was actually a key.
func closeUnclosedArrays(text string) string {
	// One insertion per pass; rescan afterwards. The number of '[' bounds the
	// number of passes.
	limit := strings.Count(text, "[") + 1
	for i := 0; i < limit; i++ {
		fixed, changed := closeOneUnclosedArray(text)
		if !changed {
			return fixed
		}
		text = fixed
	}
	return text
}

func closeOneUnclosedArray(text string) (string, bool) {
	var stack []byte
	inString := false
	escaped := false
	stringStart := -1
	lastStringStart := -1

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				lastStringStart = stringStart
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			stringStart = i
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case ':':
			if len(stack) > 0 && stack[len(stack)-1] == '[' && lastStringStart >= 0 {
				return insertArrayClose(text, lastStringStart), true
			}
		}
	}
	return text, false
}

// insertArrayClose inserts ']' before the key string starting at keyStart,
// reusing an existing separator comma when one is present.
func insertArrayClose(text string, keyStart int) string {
	i := keyStart - 1
	for i >= 0 && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n' || text[i] == '\r') {
		i--
	}
	if i >= 0 && text[i] == ',' {
		return text[:i] + "]" + text[i:]
	}
	return text[:keyStart] + "], " + text[keyStart:]
}
