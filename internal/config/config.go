package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ServerPort string
	AdminKey   string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string

	AirtableAPIKey  string
	AirtableBaseID  string
	AirtableTableID string

	// DefaultPhoneRegion is the ISO region used when a submission does not
	// carry its own country selection.
	DefaultPhoneRegion string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	AdminKey = getEnv("ADMIN_API_KEY", "")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "directory")

	MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	MongoDatabase = getEnv("MONGO_DB", "directory")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))
	ttlSeconds, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	CacheTTL = time.Duration(ttlSeconds) * time.Second

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "member-uploads")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "")

	AirtableAPIKey = getEnv("AIRTABLE_API_KEY", "")
	AirtableBaseID = getEnv("AIRTABLE_BASE_ID", "")
	AirtableTableID = getEnv("AIRTABLE_TABLE_ID", "")

	DefaultPhoneRegion = getEnv("DEFAULT_PHONE_REGION", "US")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
