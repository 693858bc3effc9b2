package quran

// SurahMeta is one entry of the 114-surah catalog as returned by the Quran
// API. The catalog is reference data: fetched, never mutated, ordered by
// ascending number.
type SurahMeta struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	RevelationType         string `json:"revelationType"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
}

// Ayah is a single verse within a surah. Number is the global sequence number
// across the whole corpus; NumberInSurah restarts at 1 per surah.
type Ayah struct {
	Number        int    `json:"number"`
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
}

// SurahDetail is a surah with its ordered verses in a chosen text edition.
type SurahDetail struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	RevelationType         string `json:"revelationType"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	Ayahs                  []Ayah `json:"ayahs"`
}

// SearchSurah is the denormalized parent surah summary attached to a search
// match.
type SearchSurah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	RevelationType         string `json:"revelationType"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
}

// SearchMatch is one verse hit from the search API. Number (the global ayah
// sequence number) is the deduplication key when merging result sets.
type SearchMatch struct {
	Number        int         `json:"number"`
	NumberInSurah int         `json:"numberInSurah"`
	Text          string      `json:"text"`
	Surah         SearchSurah `json:"surah"`
}

// SearchPayload is the collaborator's search result envelope body.
type SearchPayload struct {
	Count   int           `json:"count"`
	Matches []SearchMatch `json:"matches"`
}
