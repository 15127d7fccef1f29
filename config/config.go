package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration
	EmailHost      string
	EmailPort      string
	EmailSecure    bool // implicit TLS when true, STARTTLS otherwise
	EmailUser      string
	EmailPassword  string
	ContactEmailTo string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Strip trailing slash so origin comparison never sees a double slash
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		EmailHost:      getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:      getEnv("EMAIL_PORT", "587"),
		EmailSecure:    getEnvBool("EMAIL_SECURE", false),
		EmailUser:      getEnv("EMAIL_USER", ""),
		EmailPassword:  getEnv("EMAIL_PASSWORD", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
	}

	if cfg.EmailUser == "" || cfg.EmailPassword == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASSWORD not set. Contact form will be unavailable.")
	}
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_EMAIL_TO not set. Contact submissions have no recipient.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
