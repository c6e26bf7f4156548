package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cargoflash/internal/dto"
	"cargoflash/internal/entities"
	"cargoflash/internal/service/delivery"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntities, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTOs := make([]dto.Delivery, len(deliveryEntities))
	for i := range deliveryEntities {
		deliveryDTOs[i] = dto.FromDelivery(&deliveryEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.DeliveryFilter, error) {
	var filter entities.DeliveryFilter
	query := r.URL.Query()

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.DeliveryStatusType(statusStr)
		filter.Status = &status
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return filter, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
