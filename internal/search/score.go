package search

import "strings"

// Per-field tier scores. An exact surah-number hit outranks everything, name
// fields dominate the translation at every tier, and prefix beats substring.
const (
	numberExact, numberPrefix, numberSubstring                = 240, 180, 140
	englishExact, englishPrefix, englishSubstring             = 220, 190, 140
	arabicExact, arabicPrefix, arabicSubstring                = 220, 185, 135
	translationExact, translationPrefix, translationSubstring = 180, 150, 110

	// multiTokenBonus rewards queries whose tokens all appear somewhere in the
	// record, even when no single field contains the full phrase.
	multiTokenBonus = 70
)

// Result caps for interactive surah search.
const (
	// InlineLimit is the cap for the compact header dropdown.
	InlineLimit = 8
	// FullPageLimit is the cap for the dedicated search page.
	FullPageLimit = 12
)

// scoreField rates one normalized field against a normalized query using
// exact / prefix / substring tiers. No match scores zero.
func scoreField(field, query string, exact, prefix, substring int) int {
	if field == "" || query == "" {
		return 0
	}
	if field == query {
		return exact
	}
	if strings.HasPrefix(field, query) {
		return prefix
	}
	if strings.Contains(field, query) {
		return substring
	}
	return 0
}

// scoreEntry rates an indexed surah against a normalized query across all
// searchable fields, adding the multi-token bonus when every query token
// appears in the record's combined searchable text.
func scoreEntry(entry *catalogEntry, query string) int {
	score := 0
	score += scoreField(entry.numberKey, query, numberExact, numberPrefix, numberSubstring)
	score += scoreField(entry.englishKey, query, englishExact, englishPrefix, englishSubstring)
	score += scoreField(entry.arabicKey, query, arabicExact, arabicPrefix, arabicSubstring)
	score += scoreField(entry.translationKey, query, translationExact, translationPrefix, translationSubstring)

	tokens := strings.Fields(query)
	if len(tokens) > 1 {
		all := true
		for _, token := range tokens {
			if !strings.Contains(entry.searchableKey, token) {
				all = false
				break
			}
		}
		if all {
			score += multiTokenBonus
		}
	}

	return score
}
