// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/inductive/ecom/docs/swagger"
	appMiddleware "github.com/inductive/ecom/internal/middleware"
	"github.com/inductive/ecom/internal/product"
	"github.com/inductive/ecom/internal/response"
	"github.com/inductive/ecom/internal/upload"
)

// Deps are the handlers mounted on the router.
type Deps struct {
	Products *product.Handler
	Uploads  *upload.Handler

	// EnableDocs mounts the Swagger UI under /swagger.
	EnableDocs bool
}

// NewRouter builds the chi router with middleware, health check, Swagger UI
// and the /api routes.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if d.EnableDocs {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", d.Products.List)
		r.Post("/upload", d.Uploads.Upload)
	})

	return r
}
