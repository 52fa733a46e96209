package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain/models"
)

// SyncEnv performs the one-shot synchronization of the env file with a
// deployment record. Deployment data is authoritative for contract identity
// (address and wallet keys are always overwritten); operator preference is
// authoritative for network config (RPC_URL, CHAIN_ID, PLATFORM_FEE_RATE keep
// their prior values, defaults only fill gaps).
type SyncEnv struct {
	cfg         *config.RuntimeConfig
	deployments DeploymentRepository
	env         EnvRepository
	log         *slog.Logger
	now         func() time.Time
}

// NewSyncEnv creates a new sync use case.
func NewSyncEnv(
	cfg *config.RuntimeConfig,
	deployments DeploymentRepository,
	env EnvRepository,
	log *slog.Logger,
) *SyncEnv {
	return &SyncEnv{
		cfg:         cfg,
		deployments: deployments,
		env:         env,
		log:         log,
		now:         time.Now,
	}
}

// AddressUpdate is one contract-address key written during sync.
type AddressUpdate struct {
	EnvKey string
	Value  string
}

// SyncResult contains the outcome of a sync run.
type SyncResult struct {
	EnvPath         string
	Network         string
	Addresses       []AddressUpdate // contract keys in summary order
	PlatformWallet  string
	DefaultsApplied []string // infrastructure keys that received defaults
	DroppedKeys     []string // prior keys not carried over, sorted
}

// Run loads the deployment record, merges it into the existing env file, and
// rewrites the file. The env file is not touched when the record is missing.
func (s *SyncEnv) Run(ctx context.Context) (*SyncResult, error) {
	record, err := s.deployments.Load(ctx, s.cfg.Network)
	if err != nil {
		return nil, err
	}

	vars, err := s.env.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.env.Path(), err)
	}
	s.log.Debug("loaded env file", "path", s.env.Path(), "keys", len(vars))

	recognized := make(map[string]bool, len(models.ContractBindings)+4)
	for _, b := range models.ContractBindings {
		recognized[b.EnvKey] = true
	}
	for _, key := range []string{
		models.KeyRPCURL, models.KeyChainID,
		models.KeyPlatformWallet, models.KeyPlatformFeeRate,
	} {
		recognized[key] = true
	}
	dropped := lo.Reject(lo.Keys(vars), func(key string, _ int) bool {
		return recognized[key]
	})
	sort.Strings(dropped)

	// Contract identity: unconditional overwrite, empty string when absent.
	for _, b := range models.ContractBindings {
		vars[b.EnvKey] = record.Address(b.Contract)
	}
	vars[models.KeyPlatformWallet] = record.Configuration.PlatformWallet

	// Network config: prior values win, defaults fill gaps.
	var defaulted []string
	for key, fallback := range map[string]string{
		models.KeyRPCURL:          s.cfg.Defaults.RPCURL,
		models.KeyChainID:         s.cfg.Defaults.ChainID,
		models.KeyPlatformFeeRate: s.cfg.Defaults.PlatformFeeRate,
	} {
		if _, ok := vars[key]; !ok {
			vars[key] = fallback
			defaulted = append(defaulted, key)
		}
	}
	sort.Strings(defaulted)

	file := &models.EnvFile{
		GeneratedAt: s.now(),
		Values:      vars,
	}
	if err := s.env.Write(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", s.env.Path(), err)
	}
	s.log.Info("env file updated", "path", s.env.Path(), "network", s.cfg.Network)

	return &SyncResult{
		EnvPath: s.env.Path(),
		Network: s.cfg.Network,
		Addresses: lo.Map(models.ContractBindings, func(b models.ContractBinding, _ int) AddressUpdate {
			return AddressUpdate{EnvKey: b.EnvKey, Value: vars[b.EnvKey]}
		}),
		PlatformWallet:  vars[models.KeyPlatformWallet],
		DefaultsApplied: defaulted,
		DroppedKeys:     dropped,
	}, nil
}
