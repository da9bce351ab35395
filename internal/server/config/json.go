package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/guestbook/internal/flagx"
	"github.com/dmitrijs2005/guestbook/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          *string         `json:"endpoint_addr"`
	DatabaseURI           *string         `json:"database_uri"`
	DatabaseName          *string         `json:"database_name"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	HostUser              *string         `json:"host_user"`
	HostPasswordHash      *string         `json:"host_password_hash"`
	SMTPHost              *string         `json:"smtp_host"`
	SMTPPort              *int            `json:"smtp_port"`
	SMTPUser              *string         `json:"smtp_user"`
	SMTPPassword          *string         `json:"smtp_password"`
	SMTPFrom              *string         `json:"smtp_from"`
	NotifyEmail           *string         `json:"notify_email"`
	UploadDir             *string         `json:"upload_dir"`
	UploadMaxBytes        *int64          `json:"upload_max_bytes"`
	BackupDir             *string         `json:"backup_dir"`
	PhotoStorage          *string         `json:"photo_storage"`
	S3Bucket              *string         `json:"s3_bucket"`
	S3Region              *string         `json:"s3_region"`
	S3BaseEndpoint        *string         `json:"s3_base_endpoint"`
	S3AccessKey           *string         `json:"s3_access_key"`
	S3SecretKey           *string         `json:"s3_secret_key"`
	RateLimitWindow       *timex.Duration `json:"rate_limit_window"`
	RateLimitMax          *int64          `json:"rate_limit_max"`
	SessionSecret         *string         `json:"session_secret"`
	Dev                   *bool           `json:"dev"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. Fields absent from the file keep their
// current values. An unreadable or invalid file panics: a half-applied
// configuration is worse than a failed start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	applyString := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(c.EndpointAddr, &config.EndpointAddr)
	applyString(c.DatabaseURI, &config.DatabaseURI)
	applyString(c.DatabaseName, &config.DatabaseName)
	applyString(c.SecretKey, &config.SecretKey)
	applyString(c.HostUser, &config.HostUser)
	applyString(c.HostPasswordHash, &config.HostPasswordHash)
	applyString(c.SMTPHost, &config.SMTPHost)
	applyString(c.SMTPUser, &config.SMTPUser)
	applyString(c.SMTPPassword, &config.SMTPPassword)
	applyString(c.SMTPFrom, &config.SMTPFrom)
	applyString(c.NotifyEmail, &config.NotifyEmail)
	applyString(c.UploadDir, &config.UploadDir)
	applyString(c.BackupDir, &config.BackupDir)
	applyString(c.PhotoStorage, &config.PhotoStorage)
	applyString(c.S3Bucket, &config.S3Bucket)
	applyString(c.S3Region, &config.S3Region)
	applyString(c.S3BaseEndpoint, &config.S3BaseEndpoint)
	applyString(c.S3AccessKey, &config.S3AccessKey)
	applyString(c.S3SecretKey, &config.S3SecretKey)
	applyString(c.SessionSecret, &config.SessionSecret)

	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.SMTPPort != nil {
		config.SMTPPort = *c.SMTPPort
	}
	if c.UploadMaxBytes != nil {
		config.UploadMaxBytes = *c.UploadMaxBytes
	}
	if c.RateLimitWindow != nil {
		config.RateLimitWindow = c.RateLimitWindow.Duration
	}
	if c.RateLimitMax != nil {
		config.RateLimitMax = *c.RateLimitMax
	}
	if c.Dev != nil {
		config.Dev = *c.Dev
	}
}
