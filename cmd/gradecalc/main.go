package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gradecalc/internal/gateway"
	"gradecalc/internal/shared"
)

func main() {
	log.Println("INFO: Starting Grade Calculator Service...")

	// 1. Load Configuration
	shared.LoadEnv("")
	cfg, err := shared.LoadServiceConfig("gradecalc")
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Setup Routes and Middleware
	router := gateway.SetupRoutes(cfg)

	// 3. Configure Server
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// 4. Start Server in a Goroutine
	go func() {
		log.Printf("INFO: Grade Calculator listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: HTTP server error: %v", err)
		}
	}()

	// 5. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("INFO: Shutting down Grade Calculator...")

	if err := server.Close(); err != nil {
		log.Printf("WARN: Error closing server: %v", err)
	}
	log.Println("INFO: Grade Calculator stopped.")
}
