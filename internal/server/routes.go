package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/flowbridge/flowbridge/internal/flow"
)

type invokeRequest struct {
	Input string `json:"input"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// handleInvokeFlow reads the user input, forwards it to the flow
// client and returns the envelope. Normalized invocation failures
// still return 200; only a malformed request body is a 500.
func (s *Server) handleInvokeFlow(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("invalid invoke-flow request body", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, flow.Failure(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	if req.Input == "" {
		writeJSON(w, http.StatusBadRequest, flow.Failure("No input provided"))
		return
	}

	result := s.client.Invoke(r.Context(), flow.NewInputPayload(req.Input))
	writeJSON(w, http.StatusOK, result)
}

// handleHealth reports liveness only; it does not probe the flow service.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
