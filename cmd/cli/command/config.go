package command

// config.go persists the CLI session (tokens) to the config file, the
// local-storage analogue of the API's web clients.

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Config struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Email        string `json:"email,omitempty"`
}

// loadCLIConfig reads the config file; a missing or unreadable file yields an
// empty (logged-out) config.
func loadCLIConfig(path string) *Config {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, cfg)
	return cfg
}

func saveCLIConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
