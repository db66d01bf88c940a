package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"cacaoloom.org/cacao-web/internal/admin"
	"cacaoloom.org/cacao-web/internal/order"
)

// Config carries the storefront's runtime settings. Everything has a
// working default so `go run ./cmd/web` serves the shop with no setup.
type Config struct {
	Addr         string
	DataFile     string
	TemplatesDir string
	PublicDir    string
	ContentDir   string
	Passphrase   string
	ProfileURL   string
	LogFile      string
	Dev          bool
	Prod         bool
}

// Load reads .env (when present) and the CACAO_WEB_* environment.
// Port resolution prefers CACAO_WEB_PORT, then PORT, else 8080.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("CACAO_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Addr:         ":" + port,
		DataFile:     envOr("CACAO_WEB_DATA", "cacao-web.db"),
		TemplatesDir: envOr("CACAO_WEB_TEMPLATES", "templates"),
		PublicDir:    envOr("CACAO_WEB_PUBLIC", "public"),
		ContentDir:   envOr("CACAO_WEB_CONTENT", "content"),
		Passphrase:   envOr("CACAO_WEB_PASSPHRASE", admin.DefaultPassphrase),
		ProfileURL:   envOr("CACAO_WEB_PROFILE_URL", order.DefaultProfileURL),
		LogFile:      os.Getenv("CACAO_WEB_LOG_FILE"),
		Dev:          os.Getenv("CACAO_WEB_DEV") != "" || os.Getenv("DEV") != "",
		Prod:         strings.EqualFold(os.Getenv("CACAO_WEB_ENV"), "prod"),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
