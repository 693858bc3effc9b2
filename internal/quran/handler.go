package quran

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/satumenitaja/quran-reader-api/pkg/response"
)

type Handler struct {
	client      *Client
	textEdition string
}

// NewHandler creates the surah read handlers. textEdition is the script
// edition served when a request names none; empty falls back to the client's
// default.
func NewHandler(client *Client, textEdition string) Handler {
	return Handler{client: client, textEdition: textEdition}
}

// ListSurahsHandler serves the 114-surah catalog.
func (h *Handler) ListSurahsHandler(w http.ResponseWriter, r *http.Request) {
	surahs, err := h.client.ListSurahs(r.Context())
	if err != nil {
		response.Error(w, http.StatusBadGateway, "Failed to load surah list", nil)
		return
	}

	response.Success(w, map[string]any{"surahs": surahs}, "successfully")
}

// GetSurahDetailHandler serves one surah with its verses. The edition query
// parameter selects the text edition; the default is the reading edition.
func (h *Handler) GetSurahDetailHandler(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 || number > 114 {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", map[string]string{
			"number": "surah number must be between 1 and 114",
		})
		return
	}

	edition := r.URL.Query().Get("edition")
	if edition == "" {
		edition = h.textEdition
	}

	detail, err := h.client.GetSurahDetail(r.Context(), number, edition)
	if errors.Is(err, ErrSurahOutOfRange) {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", nil)
		return
	}
	if err != nil {
		response.Error(w, http.StatusBadGateway, "Failed to load surah", nil)
		return
	}

	response.Success(w, detail, "successfully")
}
