package reading

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/satumenitaja/quran-reader-api/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return Handler{service: service}
}

type ToggleRequest struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	AyahNumber  int    `json:"ayahNumber"`
	Text        string `json:"text"`
}

type LastReadRequest struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	AyahNumber  int    `json:"ayahNumber"`
}

func (h *Handler) ListBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	bookmarks := h.service.Bookmarks(r.Context())
	response.Success(w, bookmarks, "successfully")
}

func (h *Handler) BookmarkedAyahsHandler(w http.ResponseWriter, r *http.Request) {
	surahNumber, ok := surahParam(w, r)
	if !ok {
		return
	}

	ayahSet := h.service.BookmarkedAyahs(r.Context(), surahNumber)
	ayahs := make([]int, 0, len(ayahSet))
	for ayah := range ayahSet {
		ayahs = append(ayahs, ayah)
	}
	sort.Ints(ayahs)

	response.Success(w, map[string]any{
		"surahNumber": surahNumber,
		"ayahs":       ayahs,
	}, "successfully")
}

func (h *Handler) ToggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.SurahNumber < 1 || req.SurahNumber > 114 {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", map[string]string{
			"surahNumber": "surahNumber must be between 1 and 114",
		})
		return
	}
	if req.AyahNumber < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid ayah number", map[string]string{
			"ayahNumber": "ayahNumber must be at least 1",
		})
		return
	}

	bookmarked := h.service.Toggle(r.Context(), req.SurahNumber, req.SurahName, req.AyahNumber, req.Text)

	response.Success(w, map[string]bool{
		"is_bookmarked": bookmarked,
	}, "successfully")
}

func (h *Handler) RemoveBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	surahNumber, ok := surahParam(w, r)
	if !ok {
		return
	}

	ayahNumber, err := strconv.Atoi(chi.URLParam(r, "ayah"))
	if err != nil || ayahNumber < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid ayah number", nil)
		return
	}

	h.service.Remove(r.Context(), surahNumber, ayahNumber)
	response.Success(w, "Ok", "successfully")
}

func (h *Handler) GetLastReadHandler(w http.ResponseWriter, r *http.Request) {
	lastRead := h.service.LastRead(r.Context())
	if lastRead == nil {
		response.Success(w, nil, "no last read position")
		return
	}
	response.Success(w, lastRead, "successfully")
}

func (h *Handler) SetLastReadHandler(w http.ResponseWriter, r *http.Request) {
	var req LastReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.SurahNumber < 1 || req.SurahNumber > 114 {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", map[string]string{
			"surahNumber": "surahNumber must be between 1 and 114",
		})
		return
	}
	if req.AyahNumber < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid ayah number", map[string]string{
			"ayahNumber": "ayahNumber must be at least 1",
		})
		return
	}

	h.service.SetLastRead(r.Context(), req.SurahNumber, req.SurahName, req.AyahNumber)
	response.Success(w, "Ok", "successfully")
}

func surahParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 || number > 114 {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", map[string]string{
			"number": "surah number must be between 1 and 114",
		})
		return 0, false
	}
	return number, true
}
