package configuration

import (
	"log/slog"
	"os"

	"quorumdb/internal/configuration/util"

	"gopkg.in/yaml.v3"
)

const configDirEnv = "QUORUMDB_CONFIG_DIR"

func Load() (*Properties, error) {
	dir := os.Getenv(configDirEnv)
	if dir == "" {
		dir = "config"
	}

	raw, err := util.LoadAndExpandYaml(dir, "application")
	if err != nil {
		slog.Error("Error loading base config", "Error", err.Error())
		return nil, err
	}

	cfg := Properties{}
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		slog.Error("Error parsing base config", "Error", err.Error())
		return nil, err
	}

	if err := cfg.Replication.Validate(); err != nil {
		slog.Error("Invalid replication config", "Error", err.Error())
		return nil, err
	}

	return &cfg, nil
}
