package http

import (
	"github.com/gin-gonic/gin"

	"roi-srv/internal/middleware"
	"roi-srv/internal/proposal"
	"roi-srv/pkg/discord"
	"roi-srv/pkg/log"
)

// Handler exposes the proposal endpoints.
type Handler interface {
	Generate(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      proposal.UseCase
	discord discord.IDiscord
}

// New creates the proposal HTTP handler.
func New(l log.Logger, uc proposal.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

// MapProposalRoutes attaches the proposal routes to the group.
func MapProposalRoutes(r *gin.RouterGroup, h Handler, _ middleware.Middleware) {
	r.POST("", h.Generate)
}
