package handler

import (
	"powar-data/internal/delivery/http/dto"
	"powar-data/internal/pkg/response"
	"powar-data/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MasterHandler struct {
	uc usecase.MasterUsecase
}

func NewMasterHandler(uc usecase.MasterUsecase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

func (h *MasterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/states", h.ListStates)
	r.Get("/districts/:state_id", h.ListDistricts)
	r.Get("/tahsils/:district_id", h.ListTahsils)
	r.Get("/professions", h.ListProfessions)
	r.Get("/location-hierarchy", h.LocationHierarchy)
}

func (h *MasterHandler) ListStates(c fiber.Ctx) error {
	items, err := h.uc.ListStates(c.Context())
	if err != nil {
		return mapError(err, "states data")
	}
	return response.List(c, dto.NewStates(items))
}

func (h *MasterHandler) ListDistricts(c fiber.Ctx) error {
	stateID, err := pathID(c, "state_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListDistricts(c.Context(), stateID)
	if err != nil {
		return mapError(err, "districts data")
	}
	return response.List(c, dto.NewDistricts(items))
}

func (h *MasterHandler) ListTahsils(c fiber.Ctx) error {
	districtID, err := pathID(c, "district_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListTahsils(c.Context(), districtID)
	if err != nil {
		return mapError(err, "tahsils data")
	}
	return response.List(c, dto.NewTahsils(items))
}

func (h *MasterHandler) ListProfessions(c fiber.Ctx) error {
	items, err := h.uc.ListProfessions(c.Context())
	if err != nil {
		return mapError(err, "professions data")
	}
	return response.List(c, dto.NewProfessions(items))
}

func (h *MasterHandler) LocationHierarchy(c fiber.Ctx) error {
	tree, err := h.uc.LocationHierarchy(c.Context())
	if err != nil {
		return mapError(err, "location hierarchy")
	}
	return response.List(c, dto.NewHierarchy(tree))
}
