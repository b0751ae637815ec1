package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr        string
	GinMode        string
	StoreDriver    string // "memory" or "mysql"
	DBDSN          string
	JWTSecret      string
	AllowedOrigins []string
}

// LoadEnv reads configuration from the environment, loading a local .env
// file first when present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_DRIVER")))
	if driver == "" {
		driver = "mysql"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/shuttlebook?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		StoreDriver:    driver,
		DBDSN:          dsn,
		JWTSecret:      secret,
		AllowedOrigins: origins,
	}
}
