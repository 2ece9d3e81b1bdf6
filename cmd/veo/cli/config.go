package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// fileConfig holds optional defaults loaded from ~/.veo/config.yaml.
// Flags given on the command line always win over file values.
type fileConfig struct {
	Model        string `yaml:"model"`
	PollInterval string `yaml:"poll_interval"`
	MaxWait      string `yaml:"max_wait"`
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".veo", "config.yaml")
}

// loadConfig reads the config file at path. A missing or empty path is not
// an error; a file that exists but fails to parse is.
func loadConfig(path string) (*fileConfig, error) {
	config := &fileConfig{}
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return config, nil
}

// applyConfig overlays config file values onto the generate flags for any
// flag the user did not set explicitly.
func applyConfig(cmd *cobra.Command, config *fileConfig) error {
	flagChanged := func(name string) bool {
		return cmd != nil && cmd.Flags().Changed(name)
	}
	if config.Model != "" && !flagChanged("model") {
		generateModel = config.Model
	}
	if config.PollInterval != "" && !flagChanged("poll-interval") {
		interval, err := time.ParseDuration(config.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid poll_interval in config: %w", err)
		}
		generatePollInterval = interval
	}
	if config.MaxWait != "" && !flagChanged("max-wait") {
		maxWait, err := time.ParseDuration(config.MaxWait)
		if err != nil {
			return fmt.Errorf("invalid max_wait in config: %w", err)
		}
		generateMaxWait = maxWait
	}
	return nil
}
