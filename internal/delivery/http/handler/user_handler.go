package handler

import (
	"powar-data/internal/delivery/http/dto"
	"powar-data/internal/pkg/response"
	"powar-data/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListUsers)
	r.Get("/by-location/:state_id", h.ListUsersByState)
	r.Get("/:user_id", h.GetUser)
}

func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapError(err, "users data")
	}
	return response.List(c, dto.NewUsersWithProfile(items))
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		return mapError(err, "user details")
	}
	return response.Single(c, dto.NewUserWithProfile(item))
}

func (h *UserHandler) ListUsersByState(c fiber.Ctx) error {
	stateID, err := pathID(c, "state_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListUsersByState(c.Context(), stateID)
	if err != nil {
		return mapError(err, "users by state")
	}
	return response.List(c, dto.NewUserSummaries(items))
}
