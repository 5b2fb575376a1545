package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/flagx"
)

// parseFlags overlays command-line flags on config.
//
//	-a string   address:port of the server
//	-f string   local database file
//	-o string   download directory
//	-t int      share link TTL, seconds
//	-n int      share notice duration, milliseconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-o", "-t", "-n"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server address")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "local database file")
	fs.StringVar(&config.DownloadDir, "o", config.DownloadDir, "download directory")

	shareTTL := fs.Int("t", int(config.ShareTTL.Seconds()), "share link TTL (seconds)")
	notice := fs.Int("n", int(config.ShareNoticeDuration.Milliseconds()), "share notice duration (ms)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShareTTL = time.Duration(*shareTTL) * time.Second
	config.ShareNoticeDuration = time.Duration(*notice) * time.Millisecond
}
