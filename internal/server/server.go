/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the
generation pipeline, database and metrics into the route handlers.
*/
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"careplan-backend/internal/config"
	"careplan-backend/internal/database"
	"careplan-backend/internal/genai"
	"careplan-backend/internal/metrics"
	"careplan-backend/internal/pipeline"
)

// Server holds the dependencies shared by the HTTP handlers.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port string

	// pipeline runs the generation stages behind the API endpoints.
	pipeline *pipeline.Pipeline

	// db provides access to the optional database pool.
	db database.Service

	// stats records per-stage request and fallback counters.
	stats *metrics.Recorder

	// corsOrigins lists the origins allowed by the CORS middleware.
	corsOrigins []string

	startTime time.Time
}

// NewServer builds the dependency graph from cfg and returns a configured
// *http.Server with production-ready network timeouts.
func NewServer(ctx context.Context, cfg config.Config) (*http.Server, func(), error) {
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	stats := metrics.NewRecorder()
	app := &Server{
		port: cfg.Port,
		pipeline: pipeline.New(
			genai.NewGroqClient(cfg.GroqAPIKey),
			genai.NewGeminiClient(cfg.GeminiAPIKey),
			stats,
		),
		db:          db,
		stats:       stats,
		corsOrigins: cfg.CORSAllowOrigins,
		startTime:   time.Now(),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", app.port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,      // Time to wait for the next request on keep-alive connections.
		ReadTimeout:  10 * time.Second, // Maximum duration for reading the entire request.
		WriteTimeout: 60 * time.Second, // Generation stages can take a while; keep the write window generous.
	}

	return server, db.Close, nil
}
