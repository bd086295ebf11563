package env

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// GetEnv reads an environment variable with a typed default. A missing
// variable yields the default; a present but malformed value is fatal.
func GetEnv[T any](nameEnv string, defaultValue T) T {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})

	valueStr := os.Getenv(nameEnv)
	if valueStr == "" {
		return defaultValue
	}

	var value any

	switch any(defaultValue).(type) {
	case int:
		v, err := strconv.Atoi(valueStr)
		if err != nil {
			log.Fatalf("env %s: expected int, got %q: %v", nameEnv, valueStr, err)
		}
		value = v
	case bool:
		v, err := strconv.ParseBool(valueStr)
		if err != nil {
			log.Fatalf("env %s: expected bool, got %q: %v", nameEnv, valueStr, err)
		}
		value = v
	case float64:
		v, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			log.Fatalf("env %s: expected float64, got %q: %v", nameEnv, valueStr, err)
		}
		value = v
	default:
		value = valueStr
	}

	return value.(T)
}
