package config

import (
	"log"
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
	Port          string
	SessionSecret []byte
	CORSOrigins   []string
}

var Env Environment

// LoadEnv builds the runtime settings from environment variables. It must run
// after godotenv so .env values are visible.
func LoadEnv() {
	domain := os.Getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("Warning: SESSION_SECRET not set, using development default")
		secret = "learn2-dev-session-secret"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
		Port:          port,
		SessionSecret: []byte(secret),
		CORSOrigins:   origins,
	}
}
