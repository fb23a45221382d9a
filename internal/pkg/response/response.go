package response

import "github.com/gofiber/fiber/v3"

type DataResponse struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageNotFound            = "Not found"
	MessageMethodNotAllowed    = "Method not allowed"
	MessageInternalServerError = "Internal server error"
	MessageError               = "Error"

	StatusHealthy = "healthy"
)

// List writes a successful collection response; count is the number of items.
func List[T any](c fiber.Ctx, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	n := len(items)
	return c.Status(fiber.StatusOK).JSON(DataResponse{Success: true, Count: &n, Data: items})
}

// Single writes a successful response whose data is a one-element list.
func Single(c fiber.Ctx, item any) error {
	return c.Status(fiber.StatusOK).JSON(DataResponse{Success: true, Data: []any{item}})
}

func Health(c fiber.Ctx, service string) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{Status: StatusHealthy, Service: service})
}

func Error(c fiber.Ctx, status int, message, detail string) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	return c.Status(st).JSON(ErrorResponse{Success: false, Error: msg, Detail: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return defaultMessageForStatus(status)
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
