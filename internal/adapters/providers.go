package adapters

import (
	"github.com/google/wire"

	"github.com/openride-labs/ridesync/internal/adapters/blockchain"
	"github.com/openride-labs/ridesync/internal/adapters/fs"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDeploymentStore,
	wire.Bind(new(usecase.DeploymentRepository), new(*fs.DeploymentStore)),

	fs.NewEnvStore,
	wire.Bind(new(usecase.EnvRepository), new(*fs.EnvStore)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDialer,
	wire.Bind(new(usecase.ChainDialer), new(*blockchain.Dialer)),
)

// AllAdapters combines every adapter set
var AllAdapters = wire.NewSet(
	FSSet,
	BlockchainSet,
)
