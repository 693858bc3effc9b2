package reading

import "fmt"

// Bookmark is one saved verse. ID is the composite "{surah}:{ayah}" key, so a
// verse can be bookmarked at most once; CreatedAt (epoch millis) is the sole
// sort key for listing, newest first.
type Bookmark struct {
	ID          string `json:"id"`
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	AyahNumber  int    `json:"ayahNumber"`
	TextPreview string `json:"textPreview"`
	CreatedAt   int64  `json:"createdAt"`
}

// LastRead is the singleton reading position. It is overwritten wholesale on
// every position change; no history is kept.
type LastRead struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	AyahNumber  int    `json:"ayahNumber"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// lastReadID is the fixed primary key of the singleton meta row.
const lastReadID = "lastRead"

// BookmarkID builds the composite bookmark key.
func BookmarkID(surahNumber, ayahNumber int) string {
	return fmt.Sprintf("%d:%d", surahNumber, ayahNumber)
}
