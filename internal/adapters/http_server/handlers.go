package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"aquarium_search/internal/app"
	"aquarium_search/internal/domain"
)

const sessionCookie = "aquarium_session"

type Handlers struct {
	Q *app.DirectoryService
	R *app.RatingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/animals", h.search)
	s.mux.Get("/v1/featured", h.featured)
	s.mux.Get("/v1/leaderboard", h.leaderboard)
	s.mux.Post("/v1/ratings", h.rate)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// sessionID reads the session cookie; when absent it mints one and sets
// the cookie on the response.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := app.NewSessionID(time.Now())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	sid := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		sid = c.Value
	}
	res := h.Q.Search(r.Context(), sid, r.URL.Query().Get("q"))
	writeJSON(w, r, res)
}

func (h *Handlers) featured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.Featured(r.Context()))
}

func (h *Handlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 100 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}
	lb, err := h.Q.Leaderboard(r.Context(), limit)
	if err != nil {
		// degraded, never fatal: show an empty board
		log.Warn().Err(err).Msg("leaderboard query failed")
		lb = domain.Leaderboard{}
	}
	writeJSON(w, r, lb)
}

type rateRequest struct {
	AnimalName string `json:"animal_name"`
	Rating     string `json:"rating"`
}

func (h *Handlers) rate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON {animal_name, rating}")
		return
	}
	sid := sessionID(w, r)

	res, err := h.R.Rate(r.Context(), sid, req.AnimalName, req.Rating)
	switch {
	case errors.Is(err, app.ErrInvalidRating):
		writeProblem(w, http.StatusBadRequest, "Invalid rating", `rating must be "love" or "nope"`)
		return
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown animal")
		return
	case err != nil:
		writeProblem(w, http.StatusServiceUnavailable, "Store unavailable", "could not record rating")
		return
	}

	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK // same-session repeat: acknowledged, not re-recorded
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("failed to write rate response")
	}
}
