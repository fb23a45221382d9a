package handler

import (
	"powar-data/internal/delivery/http/dto"
	"powar-data/internal/pkg/response"
	"powar-data/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/analytics", h.Summary)
}

func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	s, err := h.uc.Summary(c.Context())
	if err != nil {
		return mapError(err, "analytics data")
	}
	return response.Single(c, dto.NewAnalytics(s))
}
