package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	RedisAddr        string
	RedisPassword    string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	TTSBaseURL       string
	TTSAPIKey        string
	TTSModel         string
	TTSVoice         string
	JWTSecret        string
	Timezone         string
	AllowOrigins     string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "literacy_service"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PWD"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:        getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "qwen3:1.7b"),
		TTSBaseURL:       getEnvOrDefault("TTS_BASE_URL", ""),
		TTSAPIKey:        getEnvOrDefault("TTS_API_KEY", ""),
		TTSModel:         getEnvOrDefault("TTS_MODEL", "tts-1"),
		TTSVoice:         getEnvOrDefault("TTS_VOICE", "nova"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "literacy-dev-secret"),
		Timezone:         getEnvOrDefault("TIMEZONE", "Asia/Seoul"),
		AllowOrigins:     getEnvOrDefault("ALLOW_ORIGINS", "http://localhost:3000"),
	}
}

// Location resolves the configured timezone used for calendar-date keys.
// Falls back to UTC when the zone cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Invalid TIMEZONE %q, falling back to UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
