// Package config handles configuration for the guest book server, including
// defaults, environment variables, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the guest book server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseURI / DatabaseName: MongoDB connection string and database.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: access token lifetime.
//   - HostUser / HostPasswordHash: the single admin identity and its bcrypt hash.
//   - SMTP*: outbound mail transport for new-entry notifications.
//   - UploadDir / UploadMaxBytes: photo upload destination and size cap.
//   - BackupDir: destination for mongodump archives.
//   - PhotoStorage: "disk" or "s3".
//   - S3*: object storage settings used when PhotoStorage is "s3".
//   - RateLimitWindow / RateLimitMax: per-IP request throttle.
//   - SessionSecret: cookie session secret backing the CSRF tokens.
//   - Dev: when true, error responses include underlying messages.
type Config struct {
	EndpointAddr          string
	DatabaseURI           string
	DatabaseName          string
	SecretKey             string
	TokenValidityDuration time.Duration
	HostUser              string
	HostPasswordHash      string
	SMTPHost              string
	SMTPPort              int
	SMTPUser              string
	SMTPPassword          string
	SMTPFrom              string
	NotifyEmail           string
	UploadDir             string
	UploadMaxBytes        int64
	BackupDir             string
	PhotoStorage          string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3AccessKey           string
	S3SecretKey           string
	RateLimitWindow       time.Duration
	RateLimitMax          int64
	SessionSecret         string
	Dev                   bool
}

// Photo storage backend names accepted in PhotoStorage.
const (
	PhotoStorageDisk = "disk"
	PhotoStorageS3   = "s3"
)

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseURI = "mongodb://localhost:27017/guestbook"
	c.DatabaseName = "guestbook"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 1 * time.Hour
	c.HostUser = "host"
	// Dev-only hash of "password". Replace via HOST_PASSWORD_HASH or cmd/hashpw.
	c.HostPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	c.SMTPHost = "localhost"
	c.SMTPPort = 1025
	c.SMTPFrom = "guestbook@localhost"
	c.UploadDir = "public/uploads"
	c.UploadMaxBytes = 5 * 1024 * 1024
	c.BackupDir = "backups"
	c.PhotoStorage = PhotoStorageDisk
	c.S3Bucket = "guestbook"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.RateLimitWindow = 15 * time.Minute
	c.RateLimitMax = 100
	c.SessionSecret = "sessionSecret"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
