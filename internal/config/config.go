// Package config loads the agent's local configuration file, prompting
// for values on first run.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is everything the agent needs that the remote store cannot
// supply: credentials, the Firestore project and the signed-in user's id.
// The UID is normally written by the login flow that owns this process.
type Config struct {
	CredentialsFile string `json:"credentialsFile"`
	ProjectID       string `json:"projectId"`
	UID             string `json:"uid"`
	SendTimeoutSec  int    `json:"sendTimeoutSec,omitempty"`
}

// SendTimeout bounds one printer delivery.
func (c Config) SendTimeout() time.Duration {
	if c.SendTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.SendTimeoutSec) * time.Second
}

// LoadOrSetup reads the config file at path, walking the operator through
// an interactive setup when it does not exist yet.
func LoadOrSetup(path string) (Config, error) {
	var cfg Config

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return cfg, fmt.Errorf("failed to create config directory: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("--- Initial Setup ---")
		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Enter Firebase service account file path: ")
		cfg.CredentialsFile = readLine(reader)

		fmt.Print("Enter Firestore project ID: ")
		cfg.ProjectID = readLine(reader)

		fmt.Print("Enter signed-in user UID: ")
		cfg.UID = readLine(reader)

		data, _ := json.MarshalIndent(cfg, "", "  ")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return cfg, err
		}
		fmt.Println("Configuration saved.")
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
