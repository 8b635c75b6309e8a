package server

import (
	"net/http"

	"github.com/inductive/ecom/internal/config"
)

// NewHTTPServer wraps handler in an http.Server configured from cfg. Read and
// write timeouts are off unless configured; an expired write deadline during
// an upload drops the response after the object is already stored.
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		ReadTimeout:       cfg.ServerReadTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}
}
