package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"roi-srv/config"
	_ "roi-srv/docs" // Import swagger docs
	"roi-srv/internal/calculator"
	calculatorUsecase "roi-srv/internal/calculator/usecase"
	"roi-srv/internal/httpserver"
	proposalUsecase "roi-srv/internal/proposal/usecase"
	"roi-srv/pkg/discord"
	"roi-srv/pkg/email"
	"roi-srv/pkg/log"
	"roi-srv/pkg/pdf"
)

// @title       ROI Estimation Service API
// @description Deterministic ad-revenue uplift estimation and proposal generation for publishers.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// 4. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize PDF renderer
	renderer := pdf.NewChromiumRenderer(pdf.Config{ChromePath: cfg.PDF.ChromePath})
	logger.Infof(ctx, "Chromium PDF renderer initialized")

	// 6. Initialize SMTP sender (optional)
	var sender email.ISender
	if cfg.SMTP.Host != "" {
		sender = email.NewSMTPSender(logger, email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		logger.Infof(ctx, "SMTP sender initialized for %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		logger.Warnf(ctx, "SMTP not configured (optional); proposal email delivery disabled")
	}

	// 7. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Domain Configuration
		CalculatorConfig: calculatorUsecase.Config{
			Catalog:               calculator.NewCatalog(cfg.Calculator.Properties),
			Benchmarks:            cfg.Calculator.Benchmarks,
			Pricing:               cfg.Calculator.Pricing,
			DeploymentMultipliers: cfg.Calculator.DeploymentMultipliers,
			RiskScenarios:         cfg.Calculator.RiskScenarios,
		},
		ProposalConfig: proposalUsecase.Config{
			DefaultPreparedBy:   cfg.Proposal.PreparedBy,
			DefaultContactEmail: cfg.Proposal.ContactEmail,
		},

		// Rendering & Delivery Configuration
		Renderer: renderer,
		Sender:   sender,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
