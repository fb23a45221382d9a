package handler

import (
	"errors"
	"strconv"

	"powar-data/internal/database"
	"powar-data/internal/delivery/http/middleware"
	"powar-data/internal/domain/user"
	"powar-data/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	MessageUserNotFound      = "User not found"
	MessageConnectionFailure = "Database connection failed"
)

// mapError turns a usecase error into the HTTP error for resource. Query
// failures become 500 "Failed to fetch <resource>".
func mapError(err error, resource string) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, MessageUserNotFound, nil)
	case errors.Is(err, database.ErrConnectionFailure):
		return middleware.NewAppError(fiber.StatusInternalServerError, MessageConnectionFailure, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch "+resource, err)
}

func pathID(c fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, errors.New("invalid "+name+": "+strconv.Quote(raw)))
	}
	return id, nil
}
