package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	// Archive backend. Empty ARCHIVE_DB_URL selects the in-memory mock
	// archive so the gallery stays fully functional without a database.
	ARCHIVE_DB_URL  string
	UPLOAD_DIR      string
	PUBLIC_BASE_URL string

	// Curator AI. Empty GEMINI_API_KEY disables analysis (not an error)
	// and makes chat answer with the localized apology.
	GEMINI_API_KEY  string
	GEMINI_BASE_URL string
	GEMINI_MODEL    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	ARCHIVE_DB_URL = getEnv("ARCHIVE_DB_URL", "")
	UPLOAD_DIR = getEnv("UPLOAD_DIR", "./uploads")
	PUBLIC_BASE_URL = getEnv("PUBLIC_BASE_URL", "")

	GEMINI_API_KEY = getEnv("GEMINI_API_KEY", "")
	GEMINI_BASE_URL = getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	GEMINI_MODEL = getEnv("GEMINI_MODEL", "gemini-2.5-flash")
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
