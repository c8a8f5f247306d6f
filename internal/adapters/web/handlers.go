package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/mikey/broker-monitor/internal/core"
	"go.uber.org/zap"
)

const defaultSender = "Unknown"

// processRequest is the body of POST /process. Sender is a pointer so an
// explicit empty sender can be told apart from a missing one.
type processRequest struct {
	Message string  `json:"message"`
	Sender  *string `json:"sender"`
}

type healthResponse struct {
	Status    string `json:"status"`
	GoogleAI  bool   `json:"google_ai"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	reader := r.Body
	if s.cfg.MaxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, r, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req processRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			// Anything undecodable is handled like an empty object.
			s.logger.Debug("Ignoring undecodable process body",
				zap.String("request_id", requestIDFrom(r.Context())),
				zap.Error(err))
			req = processRequest{}
		}
	}

	sender := defaultSender
	if req.Sender != nil {
		sender = *req.Sender
	}

	text := s.textProcessor.Normalize(req.Message)
	if err := s.textProcessor.CheckLength(text, s.maxMessageLength); err != nil {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	msg := core.Message{Text: text, Sender: sender}

	result, err := s.processor.Process(r.Context(), msg)
	if err != nil {
		s.logger.Error("Failed to process message",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("sender", sender),
			zap.Error(err))
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.generator.NextMessage())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "healthy",
		GoogleAI:  s.aiStatus.Available(),
		Timestamp: s.now().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, errorResponse{Error: msg})
}
