package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Server ServerConfig
	Tables TableConfig
	OpenAI OpenAIConfig
	Email  EmailConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type TableConfig struct {
	QuoteRequests   string
	Quotes          string
	CostAdjustments string
	SavedProjects   string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type EmailConfig struct {
	SendGridAPIKey string
	SenderEmail    string
	SenderName     string
}

// Load reads configuration from the environment. Missing optional
// values fall back to defaults; only the server port is mandatory.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Tables: TableConfig{
			QuoteRequests:   getEnv("QUOTE_REQUESTS_TABLE", "quote_requests"),
			Quotes:          getEnv("QUOTES_TABLE", "quotes"),
			CostAdjustments: getEnv("COST_ADJUSTMENTS_TABLE", "cost_adjustments"),
			SavedProjects:   getEnv("SAVED_PROJECTS_TABLE", "saved_projects"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Email: EmailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			SenderEmail:    getEnv("SENDER_EMAIL", "quotes@bathroomreno.example.com"),
			SenderName:     getEnv("SENDER_NAME", "Bathroom Renovation Quotes"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
