package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the service.
type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	PublicURL   string
	SendGridKey string
	MailFrom    string
}

var App *Config

// LoadConfig reads .env (if present) and the environment into App.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  getenv("DB_PASSWORD", "postgres"),
		DBName:      getenv("DB_NAME", "dentacare"),
		PublicURL:   getenv("PUBLIC_URL", "http://localhost:8080"),
		SendGridKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:    getenv("MAIL_FROM", "no-reply@dentacare.local"),
	}

	App = cfg
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
