package routes

import (
	"log"

	"assessment-recommender/internal/config"
	"assessment-recommender/internal/delivery/http/handler"
	"assessment-recommender/internal/delivery/http/middleware"
	"assessment-recommender/internal/usecase"
	"assessment-recommender/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg         config.Config
	health      *handler.HealthHandler
	recommend   *handler.RecommendHandler
	v1Recommend *handler.V1RecommendHandler
	assessments *handler.AssessmentsHandler
	reload      *handler.CatalogReloadHandler
	wsHandler   *ws.Handler
}

func NewRegistry(cfg config.Config, recommendUC usecase.RecommendationUsecase, catalogUC usecase.CatalogUsecase, wsHandler *ws.Handler, logger *log.Logger) *Registry {
	return &Registry{
		cfg:         cfg,
		health:      handler.NewHealthHandler(),
		recommend:   handler.NewRecommendHandler(recommendUC),
		v1Recommend: handler.NewV1RecommendHandler(recommendUC),
		assessments: handler.NewAssessmentsHandler(catalogUC),
		reload:      handler.NewCatalogReloadHandler(catalogUC, logger),
		wsHandler:   wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.recommend.RegisterRoutes(api)

	v1 := api.Group("/v1")
	r.v1Recommend.RegisterRoutes(v1)
	r.assessments.RegisterRoutes(v1)

	internalAuth := middleware.NewInternalAuthMiddleware(r.cfg.InternalToken)
	internalGroup := app.Group("/internal", internalAuth.Middleware())
	r.reload.RegisterRoutes(internalGroup)

	if r.wsHandler != nil {
		app.Get("/ws/catalog", r.wsHandler.HandleCatalogWS)
	}
}
