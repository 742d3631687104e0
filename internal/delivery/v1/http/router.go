package http

import (
	_ "github.com/DRSN-tech/lca-catalog/docs" // сгенерированная swag спецификация
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(importUC usecase.ImportUC, imagesUC usecase.ImagesUC,
	classificationUC usecase.ClassificationUC, maxUploadBytes int64) {
	r.router.Use(middleware.RequestID, middleware.Recoverer)

	r.router.Get("/healthz", healthz)
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // относительная ссылка, работает за любым хостом
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(importUC, imagesUC, classificationUC, maxUploadBytes, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/bulk", prHandler.importProducts)
		pr.Post("/images/bulk", prHandler.distributeImages)
		pr.Post("/classification/trigger", prHandler.triggerClassification)
	})
}
