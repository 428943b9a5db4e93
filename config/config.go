package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is built once in main and passed
// explicitly to everything that needs it.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads .env (if present) and the environment. Missing required
// variables are fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	return Config{
		Port:      getenv("PORT", "5000"),
		MongoURI:  must("MONGO_URI"),
		DBName:    must("DB_NAME"),
		JWTSecret: must("JWT_SECRET"),
		TokenTTL:  time.Duration(getenvInt("TOKEN_TTL_HOURS", 720)) * time.Hour,
	}
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
