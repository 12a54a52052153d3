package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"newsdigest/internal/domain"
	"newsdigest/internal/service"
)

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := service.NewsQuery{
		Source: params.Get("source"),
		Date:   params.Get("date"),
	}
	if raw := params.Get("limit"); raw != "" {
		q.Limit, _ = strconv.Atoi(raw)
	}
	if raw := params.Get("id"); raw != "" {
		id, _ := strconv.ParseInt(raw, 10, 64)
		q.ID = &id
	}

	res, err := s.news.News(r.Context(), q)
	if err != nil {
		s.logger.Error("news request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var limit int
	if raw := params.Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	res, err := s.news.Search(r.Context(), params.Get("q"), limit)
	if errors.Is(err, service.ErrSearchQueryRequired) {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("search request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.news.Stats(r.Context())
	if err != nil {
		s.logger.Error("stats request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	tracks, err := s.news.Audio(r.Context())
	if err != nil {
		s.logger.Error("audio request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string][]domain.Track{"tracks": tracks})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}
