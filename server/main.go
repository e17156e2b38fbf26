//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/simukka/pop-bubbles/common"
	"github.com/simukka/pop-bubbles/version"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs one line per request.
func withLogging(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

// newHandler serves the compiled browser build from docsDir.
func newHandler(docsDir string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// Static build (index.html, compiled main.js)
	mux.Handle("/", http.FileServer(http.Dir(docsDir)))

	// Build metadata, read from version.json next to the docs directory
	mux.HandleFunc("/api/version", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(filepath.Dir(filepath.Clean(docsDir)), "version.json")
		doc, err := version.Read(path)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, fs.ErrNotExist) {
				status = http.StatusNotFound
			}
			logger.Warn("version unavailable", "path", path, "err", err)
			http.Error(w, http.StatusText(status), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"version":    doc.Version,
			"build":      doc.Build,
			"lastUpdate": doc.LastUpdate,
		})
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return withLogging(logger, mux)
}

func main() {
	// .env is optional; the environment wins over it.
	envErr := godotenv.Load()

	addr := common.GetEnv("POP_ADDR", ":8080")
	docsDir := common.GetEnv("POP_DOCS", "docs")
	logger := common.NewCLILogger(os.Stderr, "server", common.GetEnv("POP_LOG_LEVEL", "info"))

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("could not load .env", "err", envErr)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(docsDir, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Pop! Bubbles server starting", "addr", addr, "docs", docsDir)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
