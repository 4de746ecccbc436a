package instance

import (
	"os"

	"github.com/angelmondragon/sellerdash/pkg/env"
)

// GetID names this gateway process in logs. SELLERDASH_INSTANCE_ID wins, then
// the DYNO name set by Heroku-style hosts, then the hostname.
func GetID() string {
	if id := env.Get("SELLERDASH_INSTANCE_ID", ""); id != "" {
		return id
	}
	if id := env.Get("DYNO", ""); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
