package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openride-labs/ridesync/internal/domain/models"
)

// DeploymentRepository reads deployment records produced by contract
// deployment runs.
type DeploymentRepository interface {
	// Load returns the record for a network, or an error wrapping
	// domain.ErrDeploymentNotFound when no record exists.
	Load(ctx context.Context, network string) (*models.DeploymentRecord, error)
	// ListNetworks returns the networks that have a record, sorted.
	ListNetworks(ctx context.Context) ([]string, error)
}

// EnvRepository reads and rewrites the target environment file.
type EnvRepository interface {
	// Load parses the env file into a map. A missing file yields an empty map.
	Load(ctx context.Context) (map[string]string, error)
	// Write rewrites the env file completely in the fixed section layout.
	Write(ctx context.Context, file *models.EnvFile) error
	// Path returns the absolute path of the env file.
	Path() string
}

// ChainClient is a minimal JSON-RPC client used by the check use case.
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
	Close()
}

// ChainDialer opens ChainClients on demand; check only dials when asked to
// probe the node.
type ChainDialer interface {
	Dial(ctx context.Context, rpcURL string) (ChainClient, error)
}

// ProgressSink receives coarse progress updates from long-ish operations.
type ProgressSink interface {
	Start(message string)
	Stop()
	Info(message string)
}

// NopProgress is a no-op implementation of ProgressSink.
type NopProgress struct{}

func (NopProgress) Start(string) {}
func (NopProgress) Stop()        {}
func (NopProgress) Info(string)  {}
