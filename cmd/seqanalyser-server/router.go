package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/seqanalyser-go/api/handlers"
	"github.com/aria-lang/seqanalyser-go/api/middleware"
	"github.com/aria-lang/seqanalyser-go/internal/config"
	"github.com/aria-lang/seqanalyser-go/internal/session"
)

func newRouter(cfg *config.Config, logger *log.Logger) http.Handler {
	store := session.NewStore(
		session.Limits{TTL: cfg.Session.TTL, MaxSessions: cfg.Session.MaxSessions},
		session.WithLogger(logger),
		session.WithLegacyDispatch(cfg.Parser.LegacyDispatch),
		session.WithWindowWidth(cfg.Analysis.WindowWidth),
	)
	sessions := handlers.NewSessionHandler(store, logger, cfg.Upload.MaxBytes)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/sessions", sessions.Routes())

		// Stateless analysis endpoints
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/composition", handlers.CompositionHandler)
			r.Post("/gc-window", handlers.GCWindowHandler)
			r.Post("/contains", handlers.ContainsHandler)
			r.Post("/stats", handlers.SequenceStatsHandler)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(homePage))
	})

	return r
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>DNA Sequence Analyser API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>DNA Sequence Analyser API</h1>
    <p>Upload a CSV, FASTA or spreadsheet file, pick a sequence and inspect it.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sessions</code>
        <p>Start a session. Returns its id.</p>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sessions/{id}/upload</code>
        <p>Upload a file as multipart field <code>file</code>, or as JSON with a data URL.</p>
        <pre>{"filename": "seqs.csv", "contents": "data:text/csv;base64,..."}</pre>
    </div>

    <div class="endpoint">
        <span class="method">PUT</span> <code>/api/sessions/{id}/selection</code>
        <p>Select a sequence value.</p>
        <pre>{"value": "ATGCATGCAT"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">DELETE</span> <code>/api/sessions/{id}/selection</code>
        <p>Clear the selection.</p>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sessions/{id}/search</code>
        <p>Search the selected sequence.</p>
        <pre>{"query": "GCAT"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">GET</span> <code>/api/sessions/{id}/composition.svg</code>
        <p>Composition bar chart of the selected sequence.</p>
    </div>
</body>
</html>`
