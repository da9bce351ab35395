package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   MongoDB connection URI
//	-n string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-u string   upload directory
//	-b string   backup directory
//	-p string   photo storage backend ("disk" or "s3")
//	-dev        enable verbose error responses
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The token
// validity flag is accepted as an integer in minutes and then converted to a
// time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-s", "-t", "-u", "-b", "-p", "-dev"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseURI, "d", config.DatabaseURI, "MongoDB connection URI")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "MongoDB database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.UploadDir, "u", config.UploadDir, "photo upload directory")
	fs.StringVar(&config.BackupDir, "b", config.BackupDir, "backup directory")
	fs.StringVar(&config.PhotoStorage, "p", config.PhotoStorage, "photo storage backend (disk|s3)")
	fs.BoolVar(&config.Dev, "dev", config.Dev, "development mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
