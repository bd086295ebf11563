package env

import "time"

type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket    string
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string

	JWTSecret   string
	JWTDuration time.Duration

	// Compliance thresholds. Every report view reads these; no view
	// carries its own magic numbers.
	NonCompliantAfterDays int
	StaleWarningAfterDays int
	ExpiryWarningDays     int

	ReportCacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		MongoURI:      GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetEnv("MONGO_DATABASE", "vendorback"),
		Port:          GetEnv("PORT", "8080"),

		RedisAddr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnv("REDIS_DB", 0),

		S3Bucket:    GetEnv("S3_BUCKET", ""),
		S3Endpoint:  GetEnv("AWS_ENDPOINT", ""),
		S3Region:    GetEnv("AWS_REGION", "us-east-1"),
		S3AccessKey: GetEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey: GetEnv("AWS_SECRET_ACCESS_KEY", ""),

		JWTSecret:   GetEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTDuration: time.Duration(GetEnv("JWT_DURATION_HOURS", 24)) * time.Hour,

		NonCompliantAfterDays: GetEnv("NONCOMPLIANT_AFTER_DAYS", 30),
		StaleWarningAfterDays: GetEnv("STALE_WARNING_AFTER_DAYS", 14),
		ExpiryWarningDays:     GetEnv("EXPIRY_WARNING_DAYS", 30),

		ReportCacheTTL: time.Duration(GetEnv("REPORT_CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}
