package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calculatorUC "roi-srv/internal/calculator/usecase"
	proposalUC "roi-srv/internal/proposal/usecase"
	"roi-srv/pkg/discord"
	"roi-srv/pkg/email"
	"roi-srv/pkg/log"
	"roi-srv/pkg/pdf"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Domain Configuration
	calculatorConfig calculatorUC.Config
	proposalConfig   proposalUC.Config

	// Rendering & Delivery Configuration
	renderer pdf.IRenderer
	sender   email.ISender

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Domain Configuration
	CalculatorConfig calculatorUC.Config
	ProposalConfig   proposalUC.Config

	// Rendering & Delivery Configuration
	Renderer pdf.IRenderer
	Sender   email.ISender

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		calculatorConfig: cfg.CalculatorConfig,
		proposalConfig:   cfg.ProposalConfig,

		renderer: cfg.Renderer,
		sender:   cfg.Sender,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if len(srv.calculatorConfig.Catalog.Properties) == 0 {
		return errors.New("property catalog is required")
	}

	// Renderer, sender and discord are optional. Proposal generation
	// reports rendering and delivery failures per request.
	return nil
}
