package handler

import (
	_ "embed"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/swaggest/swgui"
	"github.com/swaggest/swgui/v5emb"
)

//go:embed docs/openapi.json
var openAPIDocument []byte

type DocsHandler struct {
	prefix string
	ui     http.Handler
}

// NewDocsHandler serves Swagger UI under <prefix>/docs/. prefix is the route
// prefix the API is mounted at and must match the router passed to
// RegisterRoutes.
func NewDocsHandler(title, prefix string) *DocsHandler {
	return &DocsHandler{
		prefix: prefix,
		ui: v5emb.NewHandlerWithConfig(swgui.Config{
			Title:       title,
			SwaggerJSON: prefix + "/docs/openapi.json",
			BasePath:    prefix + "/docs/",
			ShowTopBar:  true,
		}),
	}
}

func (h *DocsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/docs/openapi.json", h.Document)
	r.Get("/docs", h.Redirect)
	r.Get("/docs/*", adaptor.HTTPHandler(h.ui))
}

func (h *DocsHandler) Document(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(openAPIDocument)
}

func (h *DocsHandler) Redirect(c fiber.Ctx) error {
	return c.Redirect().Status(fiber.StatusFound).To(h.prefix + "/docs/")
}
