package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from process environment variables. Every
// component receives the resulting Config explicitly; nothing outside this
// package reads the environment.
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address
//	MONGODB_URI          MongoDB connection string
//	MONGODB_DATABASE     database name
//	JWT_SECRET           JWT HMAC secret
//	TOKEN_VALIDITY       token lifetime (Go duration, e.g. "1h")
//	HOST_USER            admin username
//	HOST_PASSWORD_HASH   bcrypt hash of the admin password
//	SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM
//	HOST_EMAIL           notification recipient
//	UPLOAD_DIR           photo upload directory
//	BACKUP_DIR           archive directory
//	PHOTO_STORAGE        "disk" or "s3"
//	S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY
//	RATE_LIMIT_WINDOW    throttle window (Go duration)
//	RATE_LIMIT_MAX       requests allowed per window
//	SESSION_SECRET       cookie session secret
//	DEV_MODE             "true" enables verbose error responses
func parseEnv(config *Config) {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("ADDRESS", &config.EndpointAddr)
	setString("MONGODB_URI", &config.DatabaseURI)
	setString("MONGODB_DATABASE", &config.DatabaseName)
	setString("JWT_SECRET", &config.SecretKey)
	setString("HOST_USER", &config.HostUser)
	setString("HOST_PASSWORD_HASH", &config.HostPasswordHash)
	setString("SMTP_HOST", &config.SMTPHost)
	setString("SMTP_USER", &config.SMTPUser)
	setString("SMTP_PASS", &config.SMTPPassword)
	setString("SMTP_FROM", &config.SMTPFrom)
	setString("HOST_EMAIL", &config.NotifyEmail)
	setString("UPLOAD_DIR", &config.UploadDir)
	setString("BACKUP_DIR", &config.BackupDir)
	setString("PHOTO_STORAGE", &config.PhotoStorage)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_ENDPOINT", &config.S3BaseEndpoint)
	setString("S3_ACCESS_KEY", &config.S3AccessKey)
	setString("S3_SECRET_KEY", &config.S3SecretKey)
	setString("SESSION_SECRET", &config.SessionSecret)

	if v, ok := os.LookupEnv("SMTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			config.SMTPPort = port
		}
	}

	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}

	if v, ok := os.LookupEnv("RATE_LIMIT_WINDOW"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RateLimitWindow = d
		}
	}

	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.RateLimitMax = n
		}
	}

	if v, ok := os.LookupEnv("DEV_MODE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Dev = b
		}
	}
}
