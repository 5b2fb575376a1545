// Package config builds the CLI client configuration from defaults, an
// optional JSON file (-c/-config) and command-line flags, in that order of
// precedence.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
)

// Config holds runtime settings for the GophDrive CLI.
//
//   - ServerEndpointAddr: host:port of the FileService gRPC endpoint.
//   - DatabasePath: local SQLite file holding session tokens and preferences.
//   - DownloadDir: directory downloaded files are written to.
//   - ShareTTL: validity window requested for share links, a positive whole
//     number of seconds.
//   - ShareNoticeDuration: how long the "link copied" notice stays visible.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	DownloadDir         string
	ShareTTL            time.Duration
	ShareNoticeDuration time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "gophdrive.db"
	c.DownloadDir = "."
	c.ShareTTL = common.ShareLinkTTL
	c.ShareNoticeDuration = 3000 * time.Millisecond
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}

// validate rejects settings the server would silently reinterpret: it
// treats a zero TTL as its own default and only takes whole seconds.
func (c *Config) validate() error {
	if c.ShareTTL <= 0 || c.ShareTTL%time.Second != 0 {
		return fmt.Errorf("share link TTL must be a positive whole number of seconds, got %s", c.ShareTTL)
	}
	if c.ShareNoticeDuration < 0 {
		return fmt.Errorf("share notice duration must not be negative, got %s", c.ShareNoticeDuration)
	}
	return nil
}
