package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/domain/models"
)

// ShowDeployment loads a deployment record for display.
type ShowDeployment struct {
	cfg         *config.RuntimeConfig
	deployments DeploymentRepository
}

// NewShowDeployment creates a new show use case.
func NewShowDeployment(cfg *config.RuntimeConfig, deployments DeploymentRepository) *ShowDeployment {
	return &ShowDeployment{cfg: cfg, deployments: deployments}
}

// ShowOptions contains options for showing a deployment record.
type ShowOptions struct {
	// Network overrides the configured network when non-empty.
	Network string
	// Contract filters the output to a single contract, fuzzy-matched
	// against the logical names in the record.
	Contract string
}

// ContractEntry is one contract row of a record.
type ContractEntry struct {
	Contract string
	EnvKey   string
	Address  string
}

// ShowResult contains the record prepared for rendering.
type ShowResult struct {
	Network        string
	Contracts      []ContractEntry
	PlatformWallet string
}

// Run loads and filters the deployment record.
func (s *ShowDeployment) Run(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	network := opts.Network
	if network == "" {
		network = s.cfg.Network
	}

	record, err := s.deployments.Load(ctx, network)
	if err != nil {
		return nil, err
	}

	entries := contractEntries(record)
	if opts.Contract != "" {
		entries, err = matchContract(entries, opts.Contract)
		if err != nil {
			return nil, err
		}
	}

	return &ShowResult{
		Network:        network,
		Contracts:      entries,
		PlatformWallet: record.Configuration.PlatformWallet,
	}, nil
}

// Networks lists networks with deployment records, for interactive selection.
func (s *ShowDeployment) Networks(ctx context.Context) ([]string, error) {
	return s.deployments.ListNetworks(ctx)
}

// contractEntries returns the record's contracts: the well-known bindings
// first in their fixed order, then any extra contracts sorted by name.
func contractEntries(record *models.DeploymentRecord) []ContractEntry {
	known := make(map[string]bool, len(models.ContractBindings))
	entries := make([]ContractEntry, 0, len(record.Contracts))

	for _, b := range models.ContractBindings {
		known[b.Contract] = true
		if addr, ok := record.Contracts[b.Contract]; ok {
			entries = append(entries, ContractEntry{
				Contract: b.Contract,
				EnvKey:   b.EnvKey,
				Address:  addr,
			})
		}
	}

	var extra []ContractEntry
	for name, addr := range record.Contracts {
		if !known[name] {
			extra = append(extra, ContractEntry{Contract: name, Address: addr})
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Contract < extra[j].Contract })

	return append(entries, extra...)
}

// matchContract fuzzy-matches a query against contract names and returns the
// best match.
func matchContract(entries []ContractEntry, query string) ([]ContractEntry, error) {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Contract
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrContractNotFound, query)
	}

	return []ContractEntry{entries[matches[0].Index]}, nil
}
