package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satumenitaja/quran-reader-api/internal/quran"
)

// fakeSearcher maps "keyword|edition" to a canned payload or error and
// records the pairs it was asked for.
type fakeSearcher struct {
	mu       sync.Mutex
	payloads map[string]*quran.SearchPayload
	errs     map[string]error
	delay    map[string]time.Duration
	calls    []string
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		payloads: map[string]*quran.SearchPayload{},
		errs:     map[string]error{},
		delay:    map[string]time.Duration{},
	}
}

func pairKey(keyword, edition string) string {
	return keyword + "|" + edition
}

func (f *fakeSearcher) Search(ctx context.Context, keyword, scope, edition string) (*quran.SearchPayload, error) {
	key := pairKey(keyword, edition)

	f.mu.Lock()
	f.calls = append(f.calls, key)
	delay := f.delay[key]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if payload, ok := f.payloads[key]; ok {
		return payload, nil
	}
	return &quran.SearchPayload{Count: 0, Matches: []quran.SearchMatch{}}, nil
}

func match(number int, text string) quran.SearchMatch {
	return quran.SearchMatch{Number: number, NumberInSurah: 1, Text: text}
}

func TestAggregatorDedupFirstSeenWins(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.payloads[pairKey("mercy", "en.pickthall")] = &quran.SearchPayload{
		Count: 1, Matches: []quran.SearchMatch{match(42, "from preferred")},
	}
	searcher.payloads[pairKey("mercy", "id.indonesian")] = &quran.SearchPayload{
		Count: 2, Matches: []quran.SearchMatch{match(42, "from default"), match(43, "unique")},
	}

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	payload, err := agg.Search(context.Background(), "mercy", "all", "en.pickthall")
	require.NoError(t, err)
	require.Equal(t, 2, payload.Count)
	assert.Equal(t, "from preferred", payload.Matches[0].Text)
	assert.Equal(t, 43, payload.Matches[1].Number)
}

func TestAggregatorCap(t *testing.T) {
	preferred := &quran.SearchPayload{}
	fallback := &quran.SearchPayload{}
	for i := 1; i <= 125; i++ {
		preferred.Matches = append(preferred.Matches, match(i, fmt.Sprintf("p%d", i)))
		fallback.Matches = append(fallback.Matches, match(1000+i, fmt.Sprintf("f%d", i)))
	}
	preferred.Count = len(preferred.Matches)
	fallback.Count = len(fallback.Matches)

	searcher := newFakeSearcher()
	searcher.payloads[pairKey("light", "en.pickthall")] = preferred
	searcher.payloads[pairKey("light", "id.indonesian")] = fallback

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	payload, err := agg.Search(context.Background(), "light", "all", "en.pickthall")
	require.NoError(t, err)
	assert.Equal(t, MaxAggregatedMatches, payload.Count)
	assert.Len(t, payload.Matches, MaxAggregatedMatches)
}

func TestAggregatorTotalFailure(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.errs[pairKey("mercy", "en.pickthall")] = errors.New("boom")
	searcher.errs[pairKey("mercy", "id.indonesian")] = errors.New("boom")

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	_, err := agg.Search(context.Background(), "mercy", "all", "en.pickthall")
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestAggregatorPartialFailure(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.errs[pairKey("mercy", "en.pickthall")] = errors.New("boom")
	searcher.payloads[pairKey("mercy", "id.indonesian")] = &quran.SearchPayload{
		Count: 1, Matches: []quran.SearchMatch{match(7, "survivor")},
	}

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	payload, err := agg.Search(context.Background(), "mercy", "all", "en.pickthall")
	require.NoError(t, err)
	require.Equal(t, 1, payload.Count)
	assert.Equal(t, 7, payload.Matches[0].Number)
}

func TestAggregatorEmptySuccessIsNotFailure(t *testing.T) {
	searcher := newFakeSearcher()

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	payload, err := agg.Search(context.Background(), "mercy", "all", "")
	require.NoError(t, err)
	assert.Equal(t, 0, payload.Count)
	assert.Empty(t, payload.Matches)
}

func TestAggregatorIssuanceOrderMergeDespiteCompletionOrder(t *testing.T) {
	searcher := newFakeSearcher()
	// The first-issued pair completes last; its matches must still lead.
	searcher.delay[pairKey("mercy", "en.pickthall")] = 30 * time.Millisecond
	searcher.payloads[pairKey("mercy", "en.pickthall")] = &quran.SearchPayload{
		Count: 1, Matches: []quran.SearchMatch{match(1, "slow but first")},
	}
	searcher.payloads[pairKey("mercy", "id.indonesian")] = &quran.SearchPayload{
		Count: 1, Matches: []quran.SearchMatch{match(2, "fast but second")},
	}

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	payload, err := agg.Search(context.Background(), "mercy", "all", "en.pickthall")
	require.NoError(t, err)
	require.Equal(t, 2, payload.Count)
	assert.Equal(t, 1, payload.Matches[0].Number)
	assert.Equal(t, 2, payload.Matches[1].Number)
}

func TestAggregatorArabicVariantsAndEditions(t *testing.T) {
	searcher := newFakeSearcher()

	agg := NewAggregator(searcher, "id.indonesian", quran.ArabicSearchEdition)

	_, err := agg.Search(context.Background(), "الأحزاب", "all", "")
	require.NoError(t, err)

	searcher.mu.Lock()
	defer searcher.mu.Unlock()

	// Two spellings (typed and hamza-folded) times two editions (arabic
	// corpus, default) — every combination is queried.
	assert.Len(t, searcher.calls, 4)
	assert.ElementsMatch(t, []string{
		pairKey("الأحزاب", quran.ArabicSearchEdition),
		pairKey("الأحزاب", "id.indonesian"),
		pairKey("الاحزاب", quran.ArabicSearchEdition),
		pairKey("الاحزاب", "id.indonesian"),
	}, searcher.calls)
}

func TestKeywordVariantsNonArabic(t *testing.T) {
	assert.Equal(t, []string{"mercy"}, keywordVariants("mercy", false))
}

func TestEditionCandidatesDeduplicated(t *testing.T) {
	agg := NewAggregator(newFakeSearcher(), "id.indonesian", quran.ArabicSearchEdition)

	// Preferred equal to the default collapses to one candidate.
	assert.Equal(t, []string{"id.indonesian"}, agg.editionCandidates("id.indonesian", false))
	assert.Equal(t,
		[]string{"en.pickthall", quran.ArabicSearchEdition, "id.indonesian"},
		agg.editionCandidates("en.pickthall", true))
}
