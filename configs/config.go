package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBSource string
	Port     string

	// WhatsApp destinations for the order hand-off.
	WhatsAppMain string
	WhatsAppAlt  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file, using environment and defaults")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "storefront.db"),
		Port:         getEnv("PORT", "8000"),
		WhatsAppMain: getEnv("WHATSAPP_MAIN", "919105289551"),
		WhatsAppAlt:  getEnv("WHATSAPP_ALT", "917232906627"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
