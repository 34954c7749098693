package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	MongoURI       string
	DBName         string
	JWTSecret      string
	PayPalClientID string
	UploadDir      string
	CORSOrigin     string
}

var cfg *Config

// Load reads .env (if present) and the process environment into the
// package config. Safe to call more than once; the last call wins.
func Load() *Config {
	_ = godotenv.Load()

	cfg = &Config{
		Port:           getEnv("PORT", "5000"),
		Env:            getEnv("ENV", "development"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "techshop_db"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		PayPalClientID: getEnv("PAYPAL_CLIENT_ID", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
	return cfg
}

// Get returns the loaded config, loading defaults on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
