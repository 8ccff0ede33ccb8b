package app

import (
	"fmt"
	"strings"

	"assessment-recommender/internal/config"
	"assessment-recommender/internal/delivery/http/middleware"
	"assessment-recommender/internal/delivery/http/routes"
	"assessment-recommender/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{})

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware()
	f.Use(accessMw.Middleware())
	f.Use(errMw.Middleware())

	hub := ws.NewHub(c.Logger)
	go hub.Run()
	ws.SetDefaultHub(hub)
	wsHandler := ws.NewHandler(hub, c.Logger)

	reg := routes.NewRegistry(cfg, c.RecommendUC, c.CatalogUC, wsHandler, c.Logger)
	reg.Register(f)

	cleanup := func() error {
		return c.Close()
	}
	return &App{Fiber: f}, cleanup, nil
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
