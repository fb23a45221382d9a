package routes

import (
	"powar-data/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	basePath  string
	health    *handler.HealthHandler
	master    *handler.MasterHandler
	users     *handler.UserHandler
	analytics *handler.AnalyticsHandler
	docs      *handler.DocsHandler
	gatherer  prometheus.Gatherer
}

type Handlers struct {
	Health    *handler.HealthHandler
	Master    *handler.MasterHandler
	Users     *handler.UserHandler
	Analytics *handler.AnalyticsHandler
	Docs      *handler.DocsHandler
}

func NewRegistry(basePath string, h Handlers, gatherer prometheus.Gatherer) *Registry {
	return &Registry{
		basePath:  basePath,
		health:    h.Health,
		master:    h.Master,
		users:     h.Users,
		analytics: h.Analytics,
		docs:      h.Docs,
		gatherer:  gatherer,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	var root fiber.Router = app
	if r.basePath != "" {
		root = app.Group(r.basePath)
	}

	r.registerHealth(root)
	r.registerAPI(root)
	r.registerOps(root)
}

func (r *Registry) registerHealth(root fiber.Router) {
	if r.health != nil {
		r.health.RegisterRoutes(root)
	}
}

func (r *Registry) registerAPI(root fiber.Router) {
	if r.master != nil {
		r.master.RegisterRoutes(root.Group("/master"))
	}
	if r.users != nil {
		r.users.RegisterRoutes(root.Group("/users"))
	}
	if r.analytics != nil {
		r.analytics.RegisterRoutes(root)
	}
}

func (r *Registry) registerOps(root fiber.Router) {
	if r.gatherer != nil {
		root.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}
	if r.docs != nil {
		r.docs.RegisterRoutes(root)
	}
}
