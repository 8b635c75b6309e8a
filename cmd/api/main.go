//	@title			Ecom API
//	@version		1.0
//	@description	Product catalog and file upload backend.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/inductive/ecom/internal/config"
	"github.com/inductive/ecom/internal/product"
	"github.com/inductive/ecom/internal/server"
	"github.com/inductive/ecom/internal/storage"
	"github.com/inductive/ecom/internal/upload"
)

func main() {
	cfg := config.Load()

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}
	log.Printf("storage: driver=%s region=%s bucket=%s", cfg.StorageDriver, cfg.StorageRegion, cfg.StorageBucket)
	log.Printf("storage: credential sources: %s", strings.Join(storage.CredentialSources(cfg), " -> "))

	// Wire dependencies: storage → service → handler
	productHandler := product.NewHandler(product.NewService())
	uploadHandler := upload.NewHandler(upload.NewService(store))

	router := server.NewRouter(server.Deps{
		Products:   productHandler,
		Uploads:    uploadHandler,
		EnableDocs: !cfg.IsProduction(),
	})

	srv := server.NewHTTPServer(cfg, router)

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if !cfg.IsProduction() {
			log.Printf("swagger UI at http://localhost:%s/swagger/index.html", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
