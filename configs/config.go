package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AuthTransport selects how the auth gate expects the credential to arrive.
type AuthTransport string

const (
	TransportBearer AuthTransport = "bearer"
	TransportCookie AuthTransport = "cookie"
)

type Config struct {
	MongoURI      string
	DBName        string
	JWTSecret     string
	Port          string
	Origins       []string
	AuthTransport AuthTransport
	Env           string
}

func (c Config) IsProduction() bool { return c.Env == "production" }

// Load reads configuration from the environment. A .env file is loaded
// first when present, matching how the deployments ship secrets.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        getEnv("DB_NAME", "ElyStateDB"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          getEnv("PORT", "5000"),
		Origins:       splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		AuthTransport: AuthTransport(getEnv("AUTH_TRANSPORT", string(TransportBearer))),
		Env:           getEnv("APP_ENV", "development"),
	}

	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI not set in environment")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET not set in environment")
	}
	switch cfg.AuthTransport {
	case TransportBearer, TransportCookie:
	default:
		return Config{}, fmt.Errorf("AUTH_TRANSPORT must be %q or %q, got %q", TransportBearer, TransportCookie, cfg.AuthTransport)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
