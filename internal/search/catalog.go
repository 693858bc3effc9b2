package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/satumenitaja/quran-reader-api/internal/quran"
)

// catalogEntry is one surah with its searchable fields pre-normalized. Keys
// are built once when the catalog loads, not per keystroke.
type catalogEntry struct {
	surah          quran.SurahMeta
	numberKey      string
	englishKey     string
	arabicKey      string
	translationKey string
	searchableKey  string
}

// Catalog is an immutable, in-memory search index over the surah list. It is
// cheap enough to query on every keystroke (at most 114 records).
type Catalog struct {
	entries []catalogEntry
}

// NewCatalog builds the index from the full surah list.
func NewCatalog(surahs []quran.SurahMeta) *Catalog {
	entries := make([]catalogEntry, len(surahs))
	for i, surah := range surahs {
		numberKey := strconv.Itoa(surah.Number)
		englishKey := Normalize(surah.EnglishName)
		arabicKey := Normalize(surah.Name)
		translationKey := Normalize(surah.EnglishNameTranslation)

		entries[i] = catalogEntry{
			surah:          surah,
			numberKey:      numberKey,
			englishKey:     englishKey,
			arabicKey:      arabicKey,
			translationKey: translationKey,
			searchableKey: strings.Join([]string{
				numberKey, englishKey, arabicKey, translationKey,
				strings.ToLower(surah.RevelationType),
			}, " "),
		}
	}
	return &Catalog{entries: entries}
}

// Len returns the number of indexed surahs.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Search ranks the catalog against a raw user query and returns at most limit
// matches. A query that sanitizes or normalizes to nothing yields no results.
// Ties are broken by ascending surah number so identical-relevance results
// order deterministically.
func (c *Catalog) Search(rawQuery string, limit int) []quran.SurahMeta {
	if limit <= 0 {
		limit = InlineLimit
	}

	query := Normalize(SanitizeQuery(rawQuery))
	if query == "" {
		return nil
	}

	type scored struct {
		surah quran.SurahMeta
		score int
	}

	var ranked []scored
	for i := range c.entries {
		if score := scoreEntry(&c.entries[i], query); score > 0 {
			ranked = append(ranked, scored{surah: c.entries[i].surah, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].surah.Number < ranked[j].surah.Number
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]quran.SurahMeta, len(ranked))
	for i, entry := range ranked {
		results[i] = entry.surah
	}
	return results
}
