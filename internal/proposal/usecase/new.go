package usecase

import (
	"roi-srv/internal/calculator"
	"roi-srv/internal/proposal"
	"roi-srv/pkg/email"
	"roi-srv/pkg/log"
	"roi-srv/pkg/pdf"
)

const (
	defaultTitle      = "Revenue Uplift Proposal"
	defaultPreparedBy = "Partnerships Team"
)

// Config holds proposal generation settings.
type Config struct {
	DefaultPreparedBy   string
	DefaultContactEmail string
}

type implUseCase struct {
	l        log.Logger
	calcUC   calculator.UseCase
	renderer pdf.IRenderer
	sender   email.ISender
	config   Config
}

// New creates a proposal UseCase. The email sender may be nil when SMTP
// is not configured; email requests then report a delivery error.
func New(l log.Logger, calcUC calculator.UseCase, renderer pdf.IRenderer, sender email.ISender, cfg Config) proposal.UseCase {
	if cfg.DefaultPreparedBy == "" {
		cfg.DefaultPreparedBy = defaultPreparedBy
	}

	return &implUseCase{
		l:        l,
		calcUC:   calcUC,
		renderer: renderer,
		sender:   sender,
		config:   cfg,
	}
}
