package settings

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	DB_SQLITE = "sqlite"
	DB_MONGO  = "mongo"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	NODE_ENV               string
	PORT                   string
	DB_TYPE                string
	SQLITE_PATH            string
	MONGO_CONNECTION       string
	MONGO_DB               string
	SESSION_SECRET_KEY     string
	SESSION_TTL            time.Duration
	ADMIN_CREDENTIALS      string
	ADMIN_CREDENTIALS_FILE string
	CLIENT_URL             string
	LOGIN_RATE_LIMIT       uint
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newSettings() *settings {
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "8h"))
	if err != nil {
		panic(err)
	}
	loginRateLimit, err := strconv.ParseUint(getEnv("LOGIN_RATE_LIMIT", "10"), 10, 32)
	if err != nil {
		panic(err)
	}
	return &settings{
		NODE_ENV:               os.Getenv("NODE_ENV"),
		PORT:                   getEnv("PORT", "8080"),
		DB_TYPE:                getEnv("DB_TYPE", DB_SQLITE),
		SQLITE_PATH:            getEnv("SQLITE_PATH", "usuarios.db"),
		MONGO_CONNECTION:       os.Getenv("MONGO_CONNECTION"),
		MONGO_DB:               getEnv("MONGO_DB", "directorio"),
		SESSION_SECRET_KEY:     os.Getenv("SESSION_SECRET_KEY"),
		SESSION_TTL:            sessionTTL,
		ADMIN_CREDENTIALS:      os.Getenv("ADMIN_CREDENTIALS"),
		ADMIN_CREDENTIALS_FILE: os.Getenv("ADMIN_CREDENTIALS_FILE"),
		CLIENT_URL:             os.Getenv("CLIENT_URL"),
		LOGIN_RATE_LIMIT:       uint(loginRateLimit),
	}
}

func init() {
	if os.Getenv("NODE_ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}
}

func GetSettings() *settings {
	lock.Lock()
	defer lock.Unlock()
	if singleSettingsInstace == nil {
		singleSettingsInstace = newSettings()
	}
	return singleSettingsInstace
}
