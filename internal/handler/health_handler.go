package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/bqviet86/cmict-server/internal/util"
)

// Pinger : зависимость, доступность которой показывает /health
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	statusCode := http.StatusOK

	for name, check := range h.checks {
		if err := check.PingContext(ctx); err != nil {
			_ = util.LogError("[Health] "+name+" недоступен", err)
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	util.WriteJSON(w, statusCode, resp)
}
