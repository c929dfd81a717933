package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/sudo-self/links/docs/swagger"
	"github.com/sudo-self/links/internal/api"
	"github.com/sudo-self/links/internal/config"
	"github.com/sudo-self/links/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Site config.Site
	API  api.Deps
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/site.css and js/likes.js directly, not static/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticSub))))

	// The profile page itself.
	page := NewPageHandler(deps.Site)
	r.Get("/", page.Show)

	// Swagger UI — before the API mount so /api/docs wins over /api routes.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	// Like API at /api.
	r.Mount("/api", api.NewAPIRouter(deps.API))

	r.Handle("/metrics", promhttp.Handler())

	return r
}
