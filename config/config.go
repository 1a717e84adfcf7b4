package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"roi-srv/internal/calculator"
	"roi-srv/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calculator - catalog, benchmarks, pricing, risk table
	Calculator CalculatorConfig

	// Proposal - rendering and delivery
	Proposal ProposalConfig
	PDF      PDFConfig
	SMTP     SMTPConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CalculatorConfig carries the property catalog and the engine constants.
// Everything defaults to the shipped benchmarks; the YAML file can
// override any section wholesale.
type CalculatorConfig struct {
	Properties            []model.Property
	Benchmarks            calculator.Benchmarks
	Pricing               calculator.ContractPricing
	DeploymentMultipliers map[calculator.Deployment]float64
	RiskScenarios         map[calculator.RiskScenario]calculator.RiskMultipliers
}

// ProposalConfig is the configuration for proposal generation
type ProposalConfig struct {
	PreparedBy   string
	ContactEmail string
}

// PDFConfig is the configuration for the Chromium PDF renderer
type PDFConfig struct {
	ChromePath string
}

// SMTPConfig is the configuration for outbound proposal email
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("roi-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/roi/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Calculator
	if err := loadCalculator(&cfg.Calculator); err != nil {
		return nil, err
	}

	// Proposal
	cfg.Proposal.PreparedBy = viper.GetString("proposal.prepared_by")
	cfg.Proposal.ContactEmail = viper.GetString("proposal.contact_email")

	// PDF renderer
	cfg.PDF.ChromePath = viper.GetString("pdf.chrome_path")

	// SMTP
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadCalculator fills the calculator section from the shipped defaults,
// then lets the YAML file override each block wholesale.
func loadCalculator(out *CalculatorConfig) error {
	out.Properties = defaultProperties()
	if viper.IsSet("calculator.properties") {
		var props []model.Property
		if err := viper.UnmarshalKey("calculator.properties", &props); err != nil {
			return fmt.Errorf("error parsing calculator.properties: %w", err)
		}
		if len(props) > 0 {
			out.Properties = props
		}
	}

	out.Benchmarks = calculator.DefaultBenchmarks()
	if viper.IsSet("calculator.benchmarks") {
		if err := viper.UnmarshalKey("calculator.benchmarks", &out.Benchmarks); err != nil {
			return fmt.Errorf("error parsing calculator.benchmarks: %w", err)
		}
	}

	out.Pricing = calculator.DefaultContractPricing()
	if viper.IsSet("calculator.pricing") {
		if err := viper.UnmarshalKey("calculator.pricing", &out.Pricing); err != nil {
			return fmt.Errorf("error parsing calculator.pricing: %w", err)
		}
	}

	out.DeploymentMultipliers = calculator.DefaultDeploymentMultipliers()
	if viper.IsSet("calculator.deployment_multipliers") {
		raw := map[string]float64{}
		if err := viper.UnmarshalKey("calculator.deployment_multipliers", &raw); err != nil {
			return fmt.Errorf("error parsing calculator.deployment_multipliers: %w", err)
		}
		for k, v := range raw {
			out.DeploymentMultipliers[calculator.Deployment(k)] = v
		}
	}

	out.RiskScenarios = calculator.DefaultRiskScenarios()
	if viper.IsSet("calculator.risk_scenarios") {
		raw := map[string]calculator.RiskMultipliers{}
		if err := viper.UnmarshalKey("calculator.risk_scenarios", &raw); err != nil {
			return fmt.Errorf("error parsing calculator.risk_scenarios: %w", err)
		}
		for k, v := range raw {
			out.RiskScenarios[calculator.RiskScenario(k)] = v
		}
	}

	return nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Proposal
	viper.SetDefault("proposal.prepared_by", "Partnerships Team")
	viper.SetDefault("proposal.contact_email", "")

	// SMTP
	viper.SetDefault("smtp.port", 587)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}
	if cfg.HTTPServer.Mode == "" {
		return fmt.Errorf("http_server.mode is required")
	}

	if len(cfg.Calculator.Properties) == 0 {
		return fmt.Errorf("calculator.properties must have at least one entry")
	}
	seen := map[string]bool{}
	for _, p := range cfg.Calculator.Properties {
		if p.ID == "" {
			return fmt.Errorf("calculator.properties entries require an id")
		}
		if seen[p.ID] {
			return fmt.Errorf("calculator.properties has duplicate id %q", p.ID)
		}
		seen[p.ID] = true
		if p.MonthlyPageviews <= 0 {
			return fmt.Errorf("property %q: monthly_pageviews must be positive", p.ID)
		}
		if p.DisplayShare < 0 || p.DisplayShare > 1 {
			return fmt.Errorf("property %q: display_share must be within [0, 1]", p.ID)
		}
	}

	// SMTP is optional, but a partial block is a misconfiguration.
	if cfg.SMTP.Host != "" && cfg.SMTP.From == "" {
		return fmt.Errorf("smtp.from is required when smtp.host is set")
	}

	return nil
}

// defaultProperties is the catalog shipped with the service. Deployments
// normally replace it from roi-config.yaml.
func defaultProperties() []model.Property {
	return []model.Property{
		{
			ID:               "metro-news",
			Name:             "Metro News Network",
			MonthlyPageviews: 5_000_000,
			AdsPerPage:       3.2,
			DisplayCPM:       4.50,
			VideoCPM:         12.00,
			DisplayShare:     0.80,
			Category:         "news",
			SafariShare:      0.38,
		},
		{
			ID:               "daily-lifestyle",
			Name:             "Daily Lifestyle",
			MonthlyPageviews: 2_800_000,
			AdsPerPage:       2.6,
			DisplayCPM:       3.25,
			VideoCPM:         9.50,
			DisplayShare:     0.70,
			Category:         "lifestyle",
			SafariShare:      0.42,
		},
		{
			ID:               "sports-wire",
			Name:             "Sports Wire",
			MonthlyPageviews: 4_200_000,
			AdsPerPage:       3.6,
			DisplayCPM:       5.10,
			VideoCPM:         14.00,
			DisplayShare:     0.55,
			Category:         "sports",
			SafariShare:      0.33,
		},
		{
			ID:               "finance-journal",
			Name:             "Finance Journal",
			MonthlyPageviews: 1_600_000,
			AdsPerPage:       2.2,
			DisplayCPM:       7.80,
			VideoCPM:         18.50,
			DisplayShare:     0.85,
			Category:         "finance",
			SafariShare:      0.45,
		},
		{
			ID:               "home-recipes",
			Name:             "Home & Recipes",
			MonthlyPageviews: 3_400_000,
			AdsPerPage:       4.0,
			DisplayCPM:       2.90,
			VideoCPM:         8.00,
			DisplayShare:     0.90,
			Category:         "food",
			SafariShare:      0.40,
		},
	}
}
