package normalize

import (
	"strings"

	"github.com/projectbridge/projectbridge/internal/skillgraph"
)

// gapIndicators are the phrases an LLM summary uses when it names gaps in
// prose instead of (or in addition to) the structured arrays.
var gapIndicators = []string{
	"missing",
	"lacks",
	"lacking experience in",
	"lacking",
	"needs to learn",
	"no experience with",
	"no experience in",
	"would benefit from",
	"gap in",
	"gaps in",
	"unfamiliar with",
	"should learn",
	"limited exposure to",
}

// MineSkillMentions scans free text for skills from the reference list that
// are named in gap context. The LLM is asked for both a prose summary and a
// structured array; when they diverge (array empty, prose not), the prose is
// mined as a fallback signal. Only sentences containing a gap-indicator
// phrase are searched, so skills the summary praises are not reported as
// missing. Results keep the reference list's canonical casing and order.
func MineSkillMentions(text string, knownSkills []string) []string {
	if strings.TrimSpace(text) == "" || len(knownSkills) == 0 {
		return nil
	}

	var gapSentences []string
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, indicator := range gapIndicators {
			if strings.Contains(lower, indicator) {
				gapSentences = append(gapSentences, lower)
				break
			}
		}
	}
	if len(gapSentences) == 0 {
		return nil
	}

	var mined []string
	for _, skill := range knownSkills {
		needle := strings.ToLower(skill)
		for _, sentence := range gapSentences {
			if containsWord(sentence, needle) {
				mined = append(mined, skill)
				break
			}
		}
	}
	return mined
}

// MergeSkillNames merges two skill-name lists, deduplicating
// case-insensitively via the graph's name normalization. Primary entries win
// and keep their casing; secondary entries are appended only when their
// normalized form is new.
func MergeSkillNames(primary, secondary []string) []string {
	merged := make([]string, 0, len(primary)+len(secondary))
	seen := make(map[string]bool)
	for _, name := range primary {
		key := skillgraph.NormalizeName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, name)
	}
	for _, name := range secondary {
		key := skillgraph.NormalizeName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, name)
	}
	return merged
}

// splitSentences splits prose on sentence-ending punctuation. A '.' only ends
// a sentence when followed by whitespace or end of text, so "Node.js" stays
// intact. Good enough for LLM summaries, which are short declarative
// sentences.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		ends := c == '!' || c == '?' || c == ';' || c == '\n' ||
			(c == '.' && (i+1 == len(text) || text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n'))
		if ends {
			if i > start {
				sentences = append(sentences, text[start:i])
			}
			start = i + 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// containsWord reports whether needle appears in text on word boundaries, so
// "R" does not match inside "React". Both inputs must already be lowercased.
func containsWord(text, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], needle)
		if pos < 0 {
			return false
		}
		pos += idx
		before := pos - 1
		after := pos + len(needle)
		beforeOK := before < 0 || !isWordByte(text[before])
		afterOK := after >= len(text) || !isWordByte(text[after])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
	}
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '+' || c == '#'
}
