package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// MaxLimitComments caps the page size a client may ask for.
const MaxLimitComments = 100

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTTTL         time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	CORSOrigins    string
}

// LoadConfig reads .env (when present) into the process environment and
// resolves every setting through viper so plain env vars still win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "videotube")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("REQUEST_TIMEOUT", "5s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")

	cfg := Config{
		Port:           v.GetString("PORT"),
		MongoURI:       v.GetString("MONGO_URI"),
		MongoDB:        v.GetString("MONGO_DB"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTTTL:         v.GetDuration("JWT_TTL"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		CORSOrigins:    v.GetString("CORS_ORIGINS"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.JWTTTL <= 0 {
		return Config{}, errors.Errorf("invalid JWT_TTL %q", v.GetString("JWT_TTL"))
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, errors.Errorf("invalid REQUEST_TIMEOUT %q", v.GetString("REQUEST_TIMEOUT"))
	}
	return cfg, nil
}
