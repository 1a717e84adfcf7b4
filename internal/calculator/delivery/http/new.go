package http

import (
	"github.com/gin-gonic/gin"

	"roi-srv/internal/calculator"
	"roi-srv/internal/middleware"
	"roi-srv/pkg/discord"
	"roi-srv/pkg/log"
)

// Handler exposes the calculator endpoints.
type Handler interface {
	Properties(c *gin.Context)
	Calculate(c *gin.Context)
	Projection(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      calculator.UseCase
	discord discord.IDiscord
}

// New creates the calculator HTTP handler.
func New(l log.Logger, uc calculator.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

// MapCalculatorRoutes attaches the calculator routes to the group.
func MapCalculatorRoutes(r *gin.RouterGroup, h Handler, _ middleware.Middleware) {
	r.GET("/properties", h.Properties)
	r.POST("/calculate", h.Calculate)
	r.POST("/projection", h.Projection)
}
