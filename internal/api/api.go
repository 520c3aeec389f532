// Package api exposes the mining engine over HTTP: POST a batch of lines,
// get back the template catalog as JSON. Additive to the batch/CLI
// surface (SPEC_FULL §4.M) — it does not change the engine's contract.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/n0madic/logtemplate/engine"
)

// mineRequest is the POST /v1/mine body.
type mineRequest struct {
	Lines         []string `json:"lines"`
	Dataset       string   `json:"dataset"`
	DownThreshold int      `json:"downThreshold"`
	Tag           bool     `json:"tag"`
}

// templateResponse is one element of the POST /v1/mine response.
type templateResponse struct {
	Template string `json:"template"`
	Count    int    `json:"count"`
	LineIDs  []int  `json:"lineIDs"`
}

// NewRouter builds the chi router serving the mining API. defaultCfg seeds
// every /v1/mine request: a request field left at its zero value (no
// dataset, downThreshold <= 0) falls back to defaultCfg's corresponding
// field, so a deployment's --config run.yaml (dataset pack, delimiters,
// filters, down-threshold) governs requests that don't override it. When
// neither the request nor defaultCfg sets a positive downThreshold, 2 is
// used.
func NewRouter(defaultCfg engine.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", handleHealthz)
	r.Post("/v1/mine", handleMine(defaultCfg))

	return r
}

// requestID stamps every request with a UUID, exposed on the response as
// X-Request-Id and used as the log line's correlation key — the
// transport-level analogue of the engine's per-line ordinals.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		log.Printf("request %s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleMine(defaultCfg engine.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		cfg := defaultCfg
		if req.Dataset != "" {
			cfg.Dataset = req.Dataset
		}
		if req.DownThreshold > 0 {
			cfg.DownThreshold = req.DownThreshold
		}
		if cfg.DownThreshold <= 0 {
			cfg.DownThreshold = 2
		}
		cfg.Tag = req.Tag || defaultCfg.Tag

		results, err := engine.Mine(req.Lines, cfg)
		if err != nil {
			http.Error(w, "mining failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		out := make([]templateResponse, 0, len(results))
		for key, res := range results {
			out = append(out, templateResponse{
				Template: key,
				Count:    len(res.LineIDs),
				LineIDs:  res.LineIDs,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
