package rest

import "net/http"

// NewRouter wires all REST endpoints onto a ServeMux using method-qualified
// patterns.
func NewRouter(vocabularies *VocabularyHandler, reviews *ReviewHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	mux.HandleFunc("POST /api/vocabularies", vocabularies.Create)
	mux.HandleFunc("GET /api/vocabularies", vocabularies.List)
	mux.HandleFunc("GET /api/vocabularies/{id}", vocabularies.Get)
	mux.HandleFunc("PUT /api/vocabularies/{id}", vocabularies.Update)
	mux.HandleFunc("DELETE /api/vocabularies/{id}", vocabularies.Delete)

	mux.HandleFunc("POST /api/reviews", reviews.CreateSession)
	mux.HandleFunc("GET /api/reviews", reviews.ListSessions)
	mux.HandleFunc("GET /api/reviews/{id}", reviews.GetSession)
	mux.HandleFunc("POST /api/reviews/{id}/check", reviews.CheckAnswer)

	return mux
}
