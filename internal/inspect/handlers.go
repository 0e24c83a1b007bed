// Package inspect serves a read-only JSON view of a generated world.
package inspect

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// SetupRoutes configures all routes and returns the router. The world must
// not be mutated while the router is serving.
func SetupRoutes(w *world.World, styles gamedata.TileStyles) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	h := NewWorldHandler(w, styles)

	r.Route("/api", func(r chi.Router) {
		r.Get("/world", h.GetWorld)
		r.Get("/levels/{level}", h.GetLevel)
		r.Get("/levels/{level}/tiles/{x}/{y}", h.GetTile)
		r.Get("/levels/{level}/portal", h.GetPortal)
		r.Get("/sky", h.GetSky)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
