package simulation_run_post

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"cargoflash/internal/dto"
	"cargoflash/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	service      Service
	defaultLimit int
}

func New(log handlerLogger, service Service, defaultLimit int) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		defaultLimit: defaultLimit,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	result, err := h.service.ProcessAllDue(r.Context(), time.Now(), limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.SweepResult{
		Processed:       result.Processed,
		TotalCandidates: result.TotalCandidates,
		FailedEventIDs:  result.FailedEventIDs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
