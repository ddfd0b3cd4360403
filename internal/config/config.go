package config

import (
	"os"
	"strings"
)

// Config carries every externally supplied setting. It is loaded once in main
// and passed down explicitly; no other package reads the environment.
type Config struct {
	Port string

	// ModelServiceURL overrides the default model service address when
	// non-empty. The genai resolver applies the fallback.
	ModelServiceURL string

	// SessionKey signs the session cookie. When empty, a random key is
	// generated at startup and sessions do not survive a restart.
	SessionKey string

	// SecureCookies marks the session cookie Secure; only enable behind TLS.
	SecureCookies bool

	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ModelServiceURL: os.Getenv("MODEL_SERVICE_URL"),
		SessionKey:      os.Getenv("SESSION_KEY"),
		SecureCookies:   os.Getenv("SECURE_COOKIES") == "true",
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
