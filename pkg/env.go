package pkg

import "os"

// Getenv returns the value of key, or defaultValue if key is not set.
func Getenv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
