// Package healthcheck_head отвечает на HEAD /healthcheck: 204 пока сервис
// принимает трафик, 503 после начала graceful shutdown, чтобы балансировщик
// перестал слать новые запросы.
package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{shuttingDown: shuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.shuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
