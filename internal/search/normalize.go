// Package search implements the reader's search stack: diacritic-insensitive
// text normalization, heuristic ranking over the surah catalog, and the
// multi-variant aggregation of remote verse search results.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tatweel is the Arabic elongation character; it carries no phonetic value.
const tatweel = 'ـ'

// arabicMarks covers the tashkeel and Quranic annotation ranges stripped for
// casual matching: short vowels, shadda, sukun, superscript alef, and the
// recitation marks block.
var arabicMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06ED, Stride: 1},
	},
}

// arabicLetterFolds maps orthographic variants that casual search treats as
// the same letter.
var arabicLetterFolds = map[rune]rune{
	'أ': 'ا', // alef with hamza above
	'إ': 'ا', // alef with hamza below
	'آ': 'ا', // alef with madda
	'ٱ': 'ا', // alef wasla
	'ى': 'ي', // alef maksura
	'ؤ': 'و', // waw with hamza
	'ئ': 'ي', // ya with hamza
}

// stripCombining removes Unicode combining marks (category M) after NFD
// decomposition. Latin accents and Arabic tashkeel both fall in category M.
type stripCombining struct{ transform.NopResetter }

func (stripCombining) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if unicode.Is(unicode.M, r) {
			nSrc += size
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Normalize turns raw Latin or Arabic text into a canonical comparison key:
// lowercased, accent- and tashkeel-free, letter variants folded, punctuation
// replaced by spaces, whitespace collapsed. Normalize is idempotent; empty or
// whitespace-only input normalizes to "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)

	t := transform.Chain(norm.NFD, stripCombining{}, norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		if r == tatweel || unicode.Is(arabicMarks, r) {
			continue
		}
		if folded, ok := arabicLetterFolds[r]; ok {
			r = folded
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			r = ' '
		}
		if r == ' ' {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}

	return strings.TrimRight(b.String(), " ")
}

// FoldArabic applies only the Arabic-specific folding rules (tashkeel and
// tatweel removal, letter variant folding) while leaving everything else,
// including case and punctuation, untouched. The aggregator uses it to derive
// an alternate spelling of an Arabic keyword.
func FoldArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == tatweel || unicode.Is(arabicMarks, r) {
			continue
		}
		if folded, ok := arabicLetterFolds[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsArabic reports whether s has at least one Arabic-script rune.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// SanitizeQuery trims raw user input and collapses internal whitespace runs to
// a single space. It performs no script folding; pair it with Normalize.
func SanitizeQuery(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
