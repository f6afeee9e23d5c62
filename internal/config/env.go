package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultCasualRate is the per-person price for casual visits in COP.
const DefaultCasualRate int64 = 4000

type Env struct {
	AppAddr        string
	GinMode        string
	DBUser         string
	DBPass         string
	DBHost         string
	DBName         string
	JWTSecret      string
	CasualRate     int64
	AllowedOrigins []string
}

func LoadEnv() Env {
	// .env is optional; real deployments set the vars directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:         getEnv("DB_USER", "root"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:         getEnv("DB_NAME", "pool_venue"),
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-key-change-me"),
		CasualRate:     getEnvInt64("CASUAL_RATE", DefaultCasualRate),
		AllowedOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	return out
}
