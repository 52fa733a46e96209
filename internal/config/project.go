package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Spec'd fallback values, used when ridesync.toml supplies nothing.
const (
	DefaultRPCURL          = "http://127.0.0.1:8545"
	DefaultChainID         = "1337"
	DefaultPlatformFeeRate = "5"
)

// ProjectConfigName is the project marker and optional config file.
const ProjectConfigName = "ridesync.toml"

// loadProjectConfig parses ridesync.toml when present. ${VAR} references in
// values are expanded from the environment, after loading .env and .env.local
// so local overrides participate in expansion.
func loadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	tomlPath := filepath.Join(projectRoot, ProjectConfigName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg ProjectConfig
	if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectConfigName, err)
	}

	cfg.Defaults.RPCURL = os.ExpandEnv(cfg.Defaults.RPCURL)
	cfg.Defaults.ChainID = os.ExpandEnv(cfg.Defaults.ChainID)
	cfg.Defaults.PlatformFeeRate = os.ExpandEnv(cfg.Defaults.PlatformFeeRate)

	return &cfg, nil
}

// resolveDefaults merges project config over the built-in fallbacks.
func resolveDefaults(project *ProjectConfig) EnvDefaults {
	defaults := EnvDefaults{
		RPCURL:          DefaultRPCURL,
		ChainID:         DefaultChainID,
		PlatformFeeRate: DefaultPlatformFeeRate,
	}
	if project == nil {
		return defaults
	}
	if project.Defaults.RPCURL != "" {
		defaults.RPCURL = project.Defaults.RPCURL
	}
	if project.Defaults.ChainID != "" {
		defaults.ChainID = project.Defaults.ChainID
	}
	if project.Defaults.PlatformFeeRate != "" {
		defaults.PlatformFeeRate = project.Defaults.PlatformFeeRate
	}
	return defaults
}
