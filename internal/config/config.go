package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. All of it comes from the
// environment; a .env file is honored outside production.
type Config struct {
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173"`

	JWTSecret  string `env:"JWT_SECRET,required"`
	AdminToken string `env:"ADMIN_TOKEN,required"`

	// Order webhook. USE_TEST_WEBHOOK flips submissions to the test
	// endpoint during development.
	OrderWebhookURL     string `env:"ORDER_WEBHOOK_URL" envDefault:"https://n8n.yarden-zamir.com/webhook/order"`
	OrderTestWebhookURL string `env:"ORDER_TEST_WEBHOOK_URL" envDefault:"https://n8n.yarden-zamir.com/webhook-test/order"`
	UseTestWebhook      bool   `env:"USE_TEST_WEBHOOK" envDefault:"false"`

	GeoEndpoint string `env:"GEO_ENDPOINT" envDefault:"http://ip-api.com/json"`

	R2 R2Config
}

// R2Config configures the Cloudflare R2 bucket holding menu images.
type R2Config struct {
	Endpoint      string `env:"R2_ENDPOINT,required"`
	AccessKey     string `env:"R2_ACCESS_KEY,required"`
	SecretKey     string `env:"R2_SECRET_KEY,required"`
	Bucket        string `env:"R2_BUCKET_NAME,required"`
	PublicBaseURL string `env:"R2_PUBLIC_BASE_URL,required"`
}

func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WebhookURL returns the order sink currently in effect.
func (c *Config) WebhookURL() string {
	if c.UseTestWebhook {
		return c.OrderTestWebhookURL
	}
	return c.OrderWebhookURL
}
