package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"snackshop/internal/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret  string
	SessionTTL time.Duration

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SettingsCacheTTL time.Duration

	AMQPURL  string
	SmsQueue string

	LookupRatePerMinute int
	SecureCookies       bool
	TrustedProxies      []*net.IPNet

	Log logger.Config
}

// LoadConfig reads the environment after loading .env when it exists.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errList []error
	intVar := func(key string, def int) int {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return v
	}
	cidrVar := func(key string) []*net.IPNet {
		var nets []*net.IPNet
		for _, raw := range strings.Split(os.Getenv(key), ",") {
			if raw = strings.TrimSpace(raw); raw == "" {
				continue
			}
			_, n, err := net.ParseCIDR(raw)
			if err != nil {
				errList = append(errList, fmt.Errorf("%s: %w", key, err))
				continue
			}
			nets = append(nets, n)
		}
		return nets
	}

	cfg := Config{
		HTTPPort:   env("HTTP_PORT", "8080"),
		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     env("DB_NAME", "snackshop"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: time.Duration(intVar("SESSION_TTL_HOURS", 24*7)) * time.Hour,

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          intVar("REDIS_DB", 0),
		SettingsCacheTTL: time.Duration(intVar("SETTINGS_CACHE_TTL_SECONDS", 60)) * time.Second,

		AMQPURL:  os.Getenv("AMQP_URL"),
		SmsQueue: env("SMS_QUEUE", "sms.outbound"),

		LookupRatePerMinute: intVar("LOOKUP_RATE_PER_MINUTE", 10),
		SecureCookies:       os.Getenv("SECURE_COOKIES") == "true",
		TrustedProxies:      cidrVar("TRUSTED_PROXIES"),

		Log: logger.Config{
			Level:      env("LOG_LEVEL", "info"),
			Format:     env("LOG_FORMAT", "json"),
			Output:     env("LOG_OUTPUT", "stdout"),
			File:       env("LOG_FILE", "logs/snackshop.log"),
			MaxSizeMB:  intVar("LOG_MAX_SIZE_MB", 100),
			MaxBackups: intVar("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: intVar("LOG_MAX_AGE_DAYS", 30),
		},
	}

	if cfg.SessionTTL <= 0 {
		errList = append(errList, errors.New("SESSION_TTL_HOURS must be positive"))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
