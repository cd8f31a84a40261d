package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string
	LogLevel string
}

// Load reads .env if present, then the environment. Missing values fall back
// to a database file in the working directory and info-level logging.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		DBPath:   os.Getenv("SWEETMANAGE_DB_PATH"),
		LogLevel: os.Getenv("SWEETMANAGE_LOG_LEVEL"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "sweetmanage.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
