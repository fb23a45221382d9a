package app

import (
	"context"
	"fmt"
	"strings"

	"powar-data/internal/config"
	"powar-data/internal/delivery/http/handler"
	"powar-data/internal/delivery/http/middleware"
	"powar-data/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type App struct {
	Fiber    *fiber.App
	Registry *prometheus.Registry
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registerGlobalMiddleware(f, c.Log, reg)
	registerRoutes(f, c, reg)

	return &App{Fiber: f, Registry: reg}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

// Metrics and access logging wrap the error middleware so they observe the
// status of the rendered error envelope.
func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger, reg prometheus.Registerer) {
	if app == nil {
		return
	}

	app.Use(middleware.NewMetricsMiddleware(reg).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
	app.Use(cors.New())
}

func registerRoutes(app *fiber.App, c *Container, gatherer prometheus.Gatherer) {
	if app == nil {
		return
	}

	base := c.Config.App.BasePath
	routes.NewRegistry(base, routes.Handlers{
		Health:    handler.NewHealthHandler(c.Config.App.AppName),
		Master:    handler.NewMasterHandler(c.Master),
		Users:     handler.NewUserHandler(c.Users),
		Analytics: handler.NewAnalyticsHandler(c.Analytics),
		Docs:      handler.NewDocsHandler(c.Config.App.AppName+" API", base),
	}, gatherer).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
