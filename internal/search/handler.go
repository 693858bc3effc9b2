package search

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/satumenitaja/quran-reader-api/pkg/response"
)

// minKeywordLength is the minimum sanitized keyword length for verse search.
const minKeywordLength = 2

type Handler struct {
	catalog    *CatalogService
	aggregator *Aggregator
}

func NewHandler(catalog *CatalogService, aggregator *Aggregator) Handler {
	return Handler{catalog: catalog, aggregator: aggregator}
}

// SanitizeKeyword reduces a raw keyword to letters, digits, apostrophes,
// hyphens, and whitespace, then trims and collapses whitespace runs.
func SanitizeKeyword(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ValidScope reports whether scope is "all" or an integer surah number in
// [1,114].
func ValidScope(scope string) bool {
	if scope == "all" {
		return true
	}
	number, err := strconv.Atoi(scope)
	return err == nil && number >= 1 && number <= 114
}

// SearchSurahsHandler runs the local catalog search. The limit parameter
// selects between the inline (8) and full-page (12) caps.
func (h *Handler) SearchSurahsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := InlineLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed == FullPageLimit {
			limit = FullPageLimit
		}
	}

	surahs, err := h.catalog.Search(r.Context(), query, limit)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "Surah catalog unavailable", nil)
		return
	}

	response.Success(w, map[string]any{"surahs": surahs}, "successfully")
}

// SearchVersesHandler validates the keyword and scope, then delegates to the
// aggregator. Validation failures never reach the remote collaborator.
func (h *Handler) SearchVersesHandler(w http.ResponseWriter, r *http.Request) {
	keyword := SanitizeKeyword(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(keyword) < minKeywordLength {
		response.Error(w, http.StatusBadRequest, "Keyword must be at least 2 characters", map[string]string{
			"q": "keyword must be at least 2 characters after sanitization",
		})
		return
	}

	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = "all"
	}
	if !ValidScope(scope) {
		response.Error(w, http.StatusBadRequest, "Scope must be all or a surah number (1-114)", map[string]string{
			"scope": "scope must be all or a surah number between 1 and 114",
		})
		return
	}
	if scope != "all" {
		number, _ := strconv.Atoi(scope)
		scope = strconv.Itoa(number)
	}

	edition := r.URL.Query().Get("edition")

	payload, err := h.aggregator.Search(r.Context(), keyword, scope, edition)
	if errors.Is(err, ErrSearchUnavailable) {
		response.Error(w, http.StatusBadGateway, "Failed to search verses", nil)
		return
	}
	if err != nil {
		response.Error(w, http.StatusBadGateway, "Failed to search verses", nil)
		return
	}

	response.Success(w, payload, "successfully")
}
