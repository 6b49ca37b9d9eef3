package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ujv-group/hotel-brief-cli/internal/brief"
	"github.com/ujv-group/hotel-brief-cli/internal/model"
	"github.com/ujv-group/hotel-brief-cli/internal/store"
)

// newRouter builds the HTTP surface: one brief endpoint plus health.
// The store may be nil (runs are then not recorded).
func newRouter(engine *brief.Engine, st store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/v1/brief", func(w http.ResponseWriter, req *http.Request) {
		var raw model.RawBriefRequest
		if err := json.NewDecoder(req.Body).Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		resp, err := engine.Generate(req.Context(), raw)
		if err != nil {
			writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
			return
		}

		if st != nil {
			if validated, vErr := model.ValidateRequest(raw); vErr == nil {
				run, runErr := store.NewRun(validated, resp)
				if runErr == nil {
					runErr = st.SaveRun(req.Context(), run)
				}
				if runErr != nil {
					zap.L().Warn("serve: failed to record run", zap.Error(runErr))
				}
			}
		}

		writeJSON(w, http.StatusOK, resp)
	})

	return r
}

// statusForError maps the engine's error taxonomy onto HTTP statuses:
// validation failures are client errors, unknown hotels are not found,
// everything else is internal.
func statusForError(err error) int {
	switch {
	case model.IsValidation(err):
		return http.StatusBadRequest
	case model.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("serve: encode response", zap.Error(err))
	}
}
