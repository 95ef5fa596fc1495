package config

import "os"

// GetEnv reads an environment variable. Values come from the process
// environment; main loads .env via godotenv before anything calls this.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault reads an environment variable and falls back to a default,
// logging a warning so misconfigured deployments are visible in the logs.
func GetEnvOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		if Logger != nil {
			Logger.Warn(key + " not set, using default: " + fallback)
		}
		return fallback
	}
	return value
}
