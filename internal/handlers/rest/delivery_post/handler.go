package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryModifyEntity := entities.DeliveryModify{
		SenderName:     &deliveryCreateDTO.SenderName,
		SenderPhone:    &deliveryCreateDTO.SenderPhone,
		RecipientName:  &deliveryCreateDTO.RecipientName,
		RecipientPhone: &deliveryCreateDTO.RecipientPhone,
		OriginAddress:  &deliveryCreateDTO.OriginAddress,
		DestAddress:    &deliveryCreateDTO.DestAddress,
		PackageInfo:    &deliveryCreateDTO.PackageInfo,
		AutoSimulate:   &deliveryCreateDTO.AutoSimulate,
	}

	createdEntity, err := h.service.CreateDelivery(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrTrackingCodeTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDelivery(createdEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
