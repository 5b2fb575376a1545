package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophdrive/internal/flagx"
	"github.com/dmitrijs2005/gophdrive/internal/timex"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	DatabasePath        string          `json:"database_path"`
	DownloadDir         string          `json:"download_dir"`
	ShareTTL            *timex.Duration `json:"share_ttl"`
	ShareNoticeDuration *timex.Duration `json:"share_notice_duration"`
}

// parseJson overlays the file named by -c/-config, if any. Keys missing
// from the file keep their current values. A broken file panics.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.ShareTTL != nil {
		cfg.ShareTTL = jc.ShareTTL.Duration
	}
	if jc.ShareNoticeDuration != nil {
		cfg.ShareNoticeDuration = jc.ShareNoticeDuration.Duration
	}
}
