package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sudo-self/links/internal/store"
	"github.com/sudo-self/links/internal/visitor"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Likes   store.LikeStoreIface
	Visitor *visitor.Resolver
	TopN    int
}

// NewAPIRouter creates a chi sub-router for /api. All routes return
// application/json; the like endpoints are open to any origin so the page
// works when served from a CDN or a different host than the API.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-CSRF-Token", "X-Requested-With", "Accept"},
		AllowCredentials: true,
	}))

	likes := newLikesAPIHandler(deps.Likes, deps.Visitor, deps.TopN)

	r.Get("/likes", likes.Leaderboard)
	r.Post("/likes", likes.AddFromBody)
	r.Get("/likes/{pageID}", likes.Get)
	r.Post("/likes/{pageID}", likes.Add)
	r.Delete("/likes/{pageID}", likes.Remove)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
