package delivery_advance_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cargoflash/internal/dto"
	"cargoflash/internal/service/delivery"
	"cargoflash/internal/service/simulation"
	"cargoflash/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	application, err := h.service.AdvanceOne(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, simulation.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, simulation.ErrNoPendingEvent):
			// Доставка есть, но выполнять нечего: отдаем телом причину,
			// чтобы клиент отличал этот случай от несуществующей доставки.
			h.writeError(w, http.StatusNotFound, "no pending scheduled event")
		case errors.Is(err, simulation.ErrEventAlreadyExecuted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.EventApplication{
		EventID:         application.EventID,
		EventType:       application.EventType.String(),
		Status:          application.Status.String(),
		Location:        application.Location,
		Description:     application.Description,
		ProgressPercent: application.ProgressPercent,
		RemainingEvents: application.RemainingCount,
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

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
