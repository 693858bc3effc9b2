package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/satumenitaja/quran-reader-api/pkg/response"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) Handler {
	return Handler{store: store}
}

func (h *Handler) GetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Load(r.Context()), "successfully")
}

func (h *Handler) SetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var p Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	clamped := p.Clamp()
	h.store.Save(r.Context(), clamped)

	response.Success(w, clamped, "successfully")
}
