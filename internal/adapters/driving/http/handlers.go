package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"feed generation failed"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and Redis connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A backend is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "redis unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Feed endpoint

// handleContentFeed godoc
// @Summary      Content feed
// @Description  Returns every published, anonymously readable content item as a flat JSON array of canonical records
// @Tags         Feed
// @Produce      json
// @Success      200  {array}   domain.Record
// @Failure      500  {object}  ErrorResponse  "Repository or rendering failure"
// @Router       /api/ai/v1/content [get]
func (s *Server) handleContentFeed(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	records, err := s.feedService.FetchAll(r.Context(), r.Host)
	if err != nil {
		log.Printf("content feed failed: %v", err)
		feedRequests.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "feed generation failed")
		return
	}

	feedRequests.WithLabelValues("ok").Inc()
	feedDuration.Observe(time.Since(start).Seconds())
	feedRecords.Observe(float64(len(records)))

	writeJSON(w, http.StatusOK, records)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
