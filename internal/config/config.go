package config

import "os"

// Config holds the process configuration, sourced from the environment
type Config struct {
	ServerAddress string
	JWTSecret     string
	MongoURI      string
	MongoDBName   string
}

// Load reads configuration from environment variables with sane defaults.
// When MongoURI is empty the server falls back to the in-memory store.
func Load() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDBName:   getEnv("MONGO_DB", "student_exchange"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
