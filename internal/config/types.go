package config

import (
	"path/filepath"
	"time"
)

// EnvDefaults holds fallback values for the infrastructure keys. Operator
// preference is authoritative for these: an existing .env value always wins,
// the defaults only fill gaps.
type EnvDefaults struct {
	RPCURL          string
	ChainID         string
	PlatformFeeRate string
}

// ProjectConfig is the optional ridesync.toml at the project root.
type ProjectConfig struct {
	Defaults struct {
		RPCURL          string `toml:"rpc_url"`
		ChainID         string `toml:"chain_id"`
		PlatformFeeRate string `toml:"platform_fee_rate"`
	} `toml:"defaults"`
	Paths struct {
		EnvFile        string `toml:"env_file"`
		DeploymentsDir string `toml:"deployments_dir"`
	} `toml:"paths"`
}

// RuntimeConfig is the resolved configuration for a single invocation.
type RuntimeConfig struct {
	// Project paths
	ProjectRoot    string
	DataDir        string // .ridesync directory
	DeploymentsDir string // absolute
	EnvFile        string // absolute

	// Selection
	Network string

	// Behavior
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Fallbacks for RPC_URL / CHAIN_ID / PLATFORM_FEE_RATE
	Defaults EnvDefaults

	// Parsed ridesync.toml, nil when the project has none
	Project *ProjectConfig
}

// DeploymentFile returns the absolute path of the deployment record for the
// configured network.
func (c *RuntimeConfig) DeploymentFile() string {
	return c.DeploymentFileFor(c.Network)
}

// DeploymentFileFor returns the deployment record path for a given network.
func (c *RuntimeConfig) DeploymentFileFor(network string) string {
	return filepath.Join(c.DeploymentsDir, network+"-latest.json")
}
