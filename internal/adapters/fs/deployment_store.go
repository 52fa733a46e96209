package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/domain/models"
	"github.com/openride-labs/ridesync/internal/usecase"
)

const recordSuffix = "-latest.json"

// DeploymentStore reads deployment records from the deployments directory.
type DeploymentStore struct {
	cfg *config.RuntimeConfig
}

// NewDeploymentStore creates a new deployment store.
func NewDeploymentStore(cfg *config.RuntimeConfig) *DeploymentStore {
	return &DeploymentStore{cfg: cfg}
}

// Load reads and parses the record for a network.
func (s *DeploymentStore) Load(ctx context.Context, network string) (*models.DeploymentRecord, error) {
	path := s.cfg.DeploymentFileFor(network)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDeploymentNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var record models.DeploymentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if record.Contracts == nil {
		return nil, fmt.Errorf("deployment record %s has no contracts section", path)
	}

	return &record, nil
}

// ListNetworks returns the networks with a <network>-latest.json record.
func (s *DeploymentStore) ListNetworks(ctx context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.cfg.DeploymentsDir, "*"+recordSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.cfg.DeploymentsDir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoNetworks, s.cfg.DeploymentsDir)
	}

	networks := make([]string, 0, len(matches))
	for _, m := range matches {
		networks = append(networks, strings.TrimSuffix(filepath.Base(m), recordSuffix))
	}
	sort.Strings(networks)

	return networks, nil
}

// Ensure the store implements the repository port
var _ usecase.DeploymentRepository = (*DeploymentStore)(nil)
