package httpserver

import (
	"context"

	calculatorhttp "roi-srv/internal/calculator/delivery/http"
	calculatorUsecase "roi-srv/internal/calculator/usecase"
	"roi-srv/internal/middleware"
	proposalhttp "roi-srv/internal/proposal/delivery/http"
	proposalUsecase "roi-srv/internal/proposal/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize usecases
	calculatorUC := calculatorUsecase.New(srv.l, srv.calculatorConfig)
	proposalUC := proposalUsecase.New(srv.l, calculatorUC, srv.renderer, srv.sender, srv.proposalConfig)

	// Initialize HTTP handlers
	calculatorHandler := calculatorhttp.New(srv.l, calculatorUC, srv.discord)
	proposalHandler := proposalhttp.New(srv.l, proposalUC, srv.discord)

	// Map routes
	api := srv.gin.Group("/api/v1")
	calculatorhttp.MapCalculatorRoutes(api.Group("/calculator"), calculatorHandler, mw)
	proposalhttp.MapProposalRoutes(api.Group("/proposals"), proposalHandler, mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.RequestLog())

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
