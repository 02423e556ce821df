// config.go - Handles configuration for the project

package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting. Values come from the environment,
// optionally pre-loaded from a .env file.
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	DBPath    string `envconfig:"DB_PATH" default:"inventory.db"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"supersecret"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// Default admin seeded on first start when no admin exists.
	SeedAdmin     bool   `envconfig:"SEED_ADMIN" default:"true"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@inventory.com"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Admin User"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	// Low-stock alerting. Disabled when the broker address is empty.
	MQTTBroker    string `envconfig:"MQTT_BROKER" default:""`
	LowStockTopic string `envconfig:"LOW_STOCK_TOPIC" default:"inventory/alerts/low-stock"`
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
