package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/domain/models"
)

func newShowForTest(t *testing.T) *ShowDeployment {
	t.Helper()
	cfg := &config.RuntimeConfig{Network: "localhost"}
	return NewShowDeployment(cfg, &fakeDeployments{
		records: map[string]*models.DeploymentRecord{
			"localhost": parseRecord(t, `{
				"contracts": {
					"rideOrder": "0x01",
					"paymentEscrow": "0x02",
					"governanceTimelock": "0x07"
				},
				"configuration": {"platformWallet": "0xabc"}
			}`),
		},
	})
}

func TestShowListsKnownContractsFirst(t *testing.T) {
	show := newShowForTest(t)

	result, err := show.Run(context.Background(), ShowOptions{})
	require.NoError(t, err)

	assert.Equal(t, "localhost", result.Network)
	assert.Equal(t, "0xabc", result.PlatformWallet)
	require.Len(t, result.Contracts, 3)

	// Well-known bindings first in fixed order, extras after
	assert.Equal(t, "rideOrder", result.Contracts[0].Contract)
	assert.Equal(t, "RIDE_ORDER_ADDRESS", result.Contracts[0].EnvKey)
	assert.Equal(t, "paymentEscrow", result.Contracts[1].Contract)
	assert.Equal(t, "governanceTimelock", result.Contracts[2].Contract)
	assert.Empty(t, result.Contracts[2].EnvKey)
}

func TestShowFuzzyMatchesContract(t *testing.T) {
	show := newShowForTest(t)

	tests := []struct {
		query string
		want  string
	}{
		{"rideOrder", "rideOrder"},
		{"ride", "rideOrder"},
		{"escrow", "paymentEscrow"},
		{"tmlck", "governanceTimelock"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result, err := show.Run(context.Background(), ShowOptions{Contract: tt.query})
			require.NoError(t, err)
			require.Len(t, result.Contracts, 1)
			assert.Equal(t, tt.want, result.Contracts[0].Contract)
		})
	}
}

func TestShowUnknownContract(t *testing.T) {
	show := newShowForTest(t)

	_, err := show.Run(context.Background(), ShowOptions{Contract: "zzzz"})
	require.ErrorIs(t, err, domain.ErrContractNotFound)
}

func TestShowMissingNetwork(t *testing.T) {
	show := newShowForTest(t)

	_, err := show.Run(context.Background(), ShowOptions{Network: "sepolia"})
	require.ErrorIs(t, err, domain.ErrDeploymentNotFound)
}
