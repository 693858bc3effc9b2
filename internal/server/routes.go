package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/satumenitaja/quran-reader-api/internal/prefs"
	"github.com/satumenitaja/quran-reader-api/internal/quran"
	"github.com/satumenitaja/quran-reader-api/internal/reading"
	"github.com/satumenitaja/quran-reader-api/internal/search"
	"github.com/satumenitaja/quran-reader-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)

	r.Route("/quran-reader-api/v1", func(r chi.Router) {
		r.Get("/", s.ServerIsWorking)
		s.loadQuranRoutes(r)
		s.loadSearchRoutes(r)
		s.loadReadingRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to the Quran reader api"
	response.Success(w, resp, "Success")
}

func (s *Server) loadQuranRoutes(router chi.Router) {
	quranHandler := quran.NewHandler(s.quranClient, s.cfg.TextEdition)

	router.Get("/surahs", quranHandler.ListSurahsHandler)
	router.Get("/surahs/{number}", quranHandler.GetSurahDetailHandler)
}

func (s *Server) loadSearchRoutes(router chi.Router) {
	aggregator := search.NewAggregator(s.quranClient, s.cfg.SearchEdition, quran.ArabicSearchEdition)
	searchHandler := search.NewHandler(s.catalogService, aggregator)

	router.Get("/surahs/search", searchHandler.SearchSurahsHandler)
	router.Get("/search", searchHandler.SearchVersesHandler)
}

func (s *Server) loadReadingRoutes(router chi.Router) {
	readingHandler := reading.NewHandler(s.readingService)
	prefsHandler := prefs.NewHandler(s.prefsStore)

	router.Get("/bookmarks", readingHandler.ListBookmarksHandler)
	router.Post("/bookmarks/toggle", readingHandler.ToggleBookmarkHandler)
	router.Delete("/bookmarks/{number}/{ayah}", readingHandler.RemoveBookmarkHandler)
	router.Get("/surahs/{number}/bookmarks", readingHandler.BookmarkedAyahsHandler)

	router.Get("/last-read", readingHandler.GetLastReadHandler)
	router.Put("/last-read", readingHandler.SetLastReadHandler)

	router.Get("/preferences", prefsHandler.GetPreferencesHandler)
	router.Put("/preferences", prefsHandler.SetPreferencesHandler)
}
