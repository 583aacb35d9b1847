package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DBPath        string
	SessionSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Sessions won't survive a restart without a configured secret.
		secret = generateSessionSecret()
	}

	return &Config{
		ServerPort:    ":" + getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "./pokerclub.db"),
		SessionSecret: secret,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func generateSessionSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate session secret:", err)
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
