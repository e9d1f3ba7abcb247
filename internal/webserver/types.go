package webserver

import (
	"encoding/json"
	"errors"

	"github.com/psidex/dlgraph/internal/lib"
)

// SessionConfig is the first message a live page sends after connecting.
type SessionConfig struct {
	ReplayDelay lib.Duration `json:"replayDelay"`
}

// ParseSessionConfig decodes and checks a SessionConfig message.
func ParseSessionConfig(msg []byte) (SessionConfig, error) {
	var cfg SessionConfig
	if err := json.Unmarshal(msg, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ReplayDelay.Duration < 0 {
		return cfg, errors.New("replayDelay can't be negative")
	}
	return cfg, nil
}
