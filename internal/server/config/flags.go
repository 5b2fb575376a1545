package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/flagx"
)

// parseFlags overlays command-line flags on config.
//
//	-a string   gRPC bind address
//	-h string   HTTP bind address (/healthz, /metrics)
//	-d string   PostgreSQL DSN
//	-s string   JWT secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 user
//	-p string   S3 password
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-m int      max share link TTL, seconds
//
// Unknown flags (such as -c) are filtered out first with flagx.FilterArgs.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-m"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (minutes)")
	refreshTokenValidity := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	maxSignedURLTTL := fs.Int("m", int(config.MaxSignedURLTTL.Seconds()), "max share link TTL (seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidity) * time.Minute
	config.MaxSignedURLTTL = time.Duration(*maxSignedURLTTL) * time.Second
}
