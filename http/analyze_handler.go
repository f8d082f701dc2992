package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lease-agent/domain"
	"lease-agent/service"
)

type AnalyzeHandler struct {
	service *service.LeaseService
}

func NewAnalyzeHandler(service *service.LeaseService) *AnalyzeHandler {
	return &AnalyzeHandler{service: service}
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.LeaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		zap.L().Debug("analyze: bad request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	analysis, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a failure never writes a broken 200.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(analysis); err != nil {
		zap.L().Error("analyze: encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		zap.L().Warn("analyze: write response", zap.Error(err))
	}
}
