package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/satumenitaja/quran-reader-api/internal/quran"
)

// MaxAggregatedMatches caps the merged result set.
const MaxAggregatedMatches = 200

// ErrSearchUnavailable is returned only when every (keyword variant ×
// edition) request failed. Individual failures are absorbed.
var ErrSearchUnavailable = errors.New("verse search unavailable")

// VerseSearcher is the slice of the Quran API client the aggregator needs.
type VerseSearcher interface {
	Search(ctx context.Context, keyword, scope, edition string) (*quran.SearchPayload, error)
}

// Aggregator compensates for a diacritic-sensitive, edition-specific search
// collaborator by querying several keyword spellings and edition candidates
// and merging the results. Variants are tried most-specific-first, so
// first-seen-wins deduplication keeps the most relevant form of each verse.
type Aggregator struct {
	searcher       VerseSearcher
	defaultEdition string
	arabicEdition  string
	maxMatches     int
}

// NewAggregator creates an aggregator on top of a verse searcher.
// defaultEdition is the fallback search corpus; arabicEdition is the
// tashkeel-free Arabic corpus used for Arabic-script keywords.
func NewAggregator(searcher VerseSearcher, defaultEdition, arabicEdition string) *Aggregator {
	if defaultEdition == "" {
		defaultEdition = quran.DefaultSearchEdition
	}
	if arabicEdition == "" {
		arabicEdition = quran.ArabicSearchEdition
	}
	return &Aggregator{
		searcher:       searcher,
		defaultEdition: defaultEdition,
		arabicEdition:  arabicEdition,
		maxMatches:     MaxAggregatedMatches,
	}
}

// Search runs one collaborator request per (keyword variant × edition
// candidate) pair and merges the payloads. Requests run concurrently but the
// merge respects issuance order, so completion timing never changes the
// result. An empty collaborator payload is a valid success; only the failure
// of every pair makes the whole search fail.
func (a *Aggregator) Search(ctx context.Context, keyword, scope, preferredEdition string) (*quran.SearchPayload, error) {
	arabic := ContainsArabic(keyword)
	variants := keywordVariants(keyword, arabic)
	editions := a.editionCandidates(preferredEdition, arabic)

	type pair struct {
		keyword string
		edition string
	}
	var pairs []pair
	for _, variant := range variants {
		for _, edition := range editions {
			pairs = append(pairs, pair{keyword: variant, edition: edition})
		}
	}

	payloads := make([]*quran.SearchPayload, len(pairs))

	var wg sync.WaitGroup
	for i, p := range pairs {
		wg.Add(1)
		go func(i int, p pair) {
			defer wg.Done()
			payload, err := a.searcher.Search(ctx, p.keyword, scope, p.edition)
			if err != nil {
				slog.Debug("search pair failed",
					"keyword", p.keyword, "edition", p.edition, "error", err)
				return
			}
			payloads[i] = payload
		}(i, p)
	}
	wg.Wait()

	succeeded := false
	seen := make(map[int]struct{})
	merged := make([]quran.SearchMatch, 0)

	for _, payload := range payloads {
		if payload == nil {
			continue
		}
		succeeded = true
		for _, match := range payload.Matches {
			if len(merged) >= a.maxMatches {
				break
			}
			if _, dup := seen[match.Number]; dup {
				continue
			}
			seen[match.Number] = struct{}{}
			merged = append(merged, match)
		}
		if len(merged) >= a.maxMatches {
			break
		}
	}

	if !succeeded {
		return nil, ErrSearchUnavailable
	}

	return &quran.SearchPayload{Count: len(merged), Matches: merged}, nil
}

// keywordVariants returns the spellings to try, most specific first: the
// keyword as typed, then (for Arabic script) its folded form when folding
// actually changes it.
func keywordVariants(keyword string, arabic bool) []string {
	variants := []string{keyword}
	if arabic {
		if folded := FoldArabic(keyword); folded != keyword && folded != "" {
			variants = append(variants, folded)
		}
	}
	return variants
}

// editionCandidates returns the search corpora to try in priority order, with
// duplicates removed.
func (a *Aggregator) editionCandidates(preferred string, arabic bool) []string {
	var candidates []string
	if preferred != "" {
		candidates = append(candidates, preferred)
	}
	if arabic {
		candidates = append(candidates, a.arabicEdition)
	}
	candidates = append(candidates, a.defaultEdition)

	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0]
	for _, edition := range candidates {
		if _, dup := seen[edition]; dup {
			continue
		}
		seen[edition] = struct{}{}
		unique = append(unique, edition)
	}
	return unique
}
