package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBUrl  string
	GinEnv string
	// Session tokens
	SessionSecret string
	SessionIssuer string
	SessionTTL    time.Duration
	CookieSecure  bool
	// Catalog
	AllowAnonymousSkillCreate bool
	SeedSkills                bool
	AutoMigrate               bool
	// Kafka (optional user events)
	KafkaBroker          string
	KafkaUserEventsTopic string
	KafkaUsername        string
	KafkaPassword        string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production when missing
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		DBUrl:  getEnv("DATABASE_URL", ""),
		GinEnv: getEnv("GIN_MODE", "debug"),

		SessionSecret: getEnv("SESSION_SECRET", getEnv("AUTH_SECRET", "")),
		SessionIssuer: getEnv("SESSION_ISSUER", "talento-local"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 720)) * time.Hour, // 30 days
		CookieSecure:  getEnvBool("COOKIE_SECURE", getEnv("GIN_MODE", "") == "release"),

		AllowAnonymousSkillCreate: getEnvBool("ALLOW_ANONYMOUS_SKILL_CREATE", false),
		SeedSkills:                getEnvBool("SEED_SKILLS", false),
		AutoMigrate:               getEnvBool("AUTO_MIGRATE", false),

		KafkaBroker:          strings.TrimSpace(getEnv("KAFKA_BROKER", "")),
		KafkaUserEventsTopic: getEnv("KAFKA_TOPIC_USER_EVENTS", "talento.users"),
		KafkaUsername:        getEnv("KAFKA_USERNAME", ""),
		KafkaPassword:        getEnv("KAFKA_PASSWORD", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is missing. Login will fail until it is configured.")
	}
	if cfg.KafkaBroker == "" {
		log.Println("INFO: KAFKA_BROKER not configured. User events will not be published.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
