package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
)

type cliConfig struct {
	APIURL              string        `yaml:"api_url"`
	SessionFile         string        `yaml:"session_file"`
	DownloadURLTemplate string        `yaml:"download_url_template"`
	Timeout             time.Duration `yaml:"timeout"`
	LogLevel            string        `yaml:"log_level"`
}

func defaultConfig(dir string) cliConfig {
	return cliConfig{
		APIURL:              "http://localhost:8080",
		SessionFile:         filepath.Join(dir, "session.yaml"),
		DownloadURLTemplate: config.DefaultDownloadURLTemplate,
		Timeout:             10 * time.Second,
		LogLevel:            "error",
	}
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kbctl")
	}
	return ".kbctl"
}

// loadConfig reads the YAML file over the defaults. A missing file is not an error.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg, nil
}
