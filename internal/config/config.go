package config

import (
	"log"
	"os"
)

type Config struct {
	Port string
	Env  string

	GeminiAPIKey string
	GeminiModel  string

	UploadDir string
	ReportDir string
	StaticDir string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		ReportDir: getEnv("REPORT_DIR", "reports"),
		StaticDir: getEnv("STATIC_DIR", "public"),
	}
}
