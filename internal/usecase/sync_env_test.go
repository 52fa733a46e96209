package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/domain/models"
)

// fakeDeployments serves records from memory, keyed by network.
type fakeDeployments struct {
	records map[string]*models.DeploymentRecord
}

func (f *fakeDeployments) Load(ctx context.Context, network string) (*models.DeploymentRecord, error) {
	record, ok := f.records[network]
	if !ok {
		return nil, domain.ErrDeploymentNotFound
	}
	return record, nil
}

func (f *fakeDeployments) ListNetworks(ctx context.Context) ([]string, error) {
	networks := make([]string, 0, len(f.records))
	for n := range f.records {
		networks = append(networks, n)
	}
	return networks, nil
}

// fakeEnv holds the env map in memory and records writes.
type fakeEnv struct {
	vars    map[string]string
	written *models.EnvFile
	writes  int
}

func (f *fakeEnv) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(f.vars))
	for k, v := range f.vars {
		out[k] = v
	}
	return out, nil
}

func (f *fakeEnv) Write(ctx context.Context, file *models.EnvFile) error {
	f.written = file
	f.writes++
	return nil
}

func (f *fakeEnv) Path() string { return "/project/.env" }

func parseRecord(t *testing.T, raw string) *models.DeploymentRecord {
	t.Helper()
	var record models.DeploymentRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return &record
}

const fullRecord = `{
	"contracts": {
		"rideOrder": "0x1111111111111111111111111111111111111111",
		"paymentEscrow": "0x2222222222222222222222222222222222222222",
		"userRegistry": "0x3333333333333333333333333333333333333333",
		"ratingSystem": "0x4444444444444444444444444444444444444444",
		"disputeResolution": "0x5555555555555555555555555555555555555555"
	},
	"configuration": {
		"platformWallet": "0x6666666666666666666666666666666666666666"
	}
}`

func newSyncEnvForTest(record *models.DeploymentRecord, prior map[string]string) (*SyncEnv, *fakeEnv) {
	cfg := &config.RuntimeConfig{
		Network: "localhost",
		Defaults: config.EnvDefaults{
			RPCURL:          config.DefaultRPCURL,
			ChainID:         config.DefaultChainID,
			PlatformFeeRate: config.DefaultPlatformFeeRate,
		},
	}

	deployments := &fakeDeployments{records: map[string]*models.DeploymentRecord{}}
	if record != nil {
		deployments.records["localhost"] = record
	}
	env := &fakeEnv{vars: prior}

	sync := NewSyncEnv(cfg, deployments, env, slog.New(slog.NewTextHandler(io.Discard, nil)))
	sync.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	return sync, env
}

func TestSyncFreshEnv(t *testing.T) {
	sync, env := newSyncEnvForTest(parseRecord(t, fullRecord), nil)

	result, err := sync.Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, env.written)
	vars := env.written.Values
	assert.Equal(t, "0x1111111111111111111111111111111111111111", vars["RIDE_ORDER_ADDRESS"])
	assert.Equal(t, "0x2222222222222222222222222222222222222222", vars["PAYMENT_ESCROW_ADDRESS"])
	assert.Equal(t, "0x3333333333333333333333333333333333333333", vars["USER_REGISTRY_ADDRESS"])
	assert.Equal(t, "0x4444444444444444444444444444444444444444", vars["RATING_SYSTEM_ADDRESS"])
	assert.Equal(t, "0x5555555555555555555555555555555555555555", vars["DISPUTE_RESOLUTION_ADDRESS"])
	assert.Equal(t, "0x6666666666666666666666666666666666666666", vars["PLATFORM_WALLET"])
	assert.Equal(t, "http://127.0.0.1:8545", vars["RPC_URL"])
	assert.Equal(t, "1337", vars["CHAIN_ID"])
	assert.Equal(t, "5", vars["PLATFORM_FEE_RATE"])
	assert.Len(t, vars, 9)

	assert.Equal(t, []string{"CHAIN_ID", "PLATFORM_FEE_RATE", "RPC_URL"}, result.DefaultsApplied)
	assert.Empty(t, result.DroppedKeys)

	// Summary lists the five contract keys in fixed order
	keys := make([]string, len(result.Addresses))
	for i, a := range result.Addresses {
		keys[i] = a.EnvKey
	}
	assert.Equal(t, []string{
		"RIDE_ORDER_ADDRESS",
		"PAYMENT_ESCROW_ADDRESS",
		"USER_REGISTRY_ADDRESS",
		"RATING_SYSTEM_ADDRESS",
		"DISPUTE_RESOLUTION_ADDRESS",
	}, keys)
}

func TestSyncPriorValuesWinForInfrastructureKeys(t *testing.T) {
	sync, env := newSyncEnvForTest(parseRecord(t, fullRecord), map[string]string{
		"CHAIN_ID":           "42",
		"RIDE_ORDER_ADDRESS": "0xdeadbeef",
	})

	result, err := sync.Run(context.Background())
	require.NoError(t, err)

	vars := env.written.Values
	// Operator value preserved
	assert.Equal(t, "42", vars["CHAIN_ID"])
	// Deployment data overwrites addresses regardless of prior content
	assert.Equal(t, "0x1111111111111111111111111111111111111111", vars["RIDE_ORDER_ADDRESS"])
	assert.Equal(t, []string{"PLATFORM_FEE_RATE", "RPC_URL"}, result.DefaultsApplied)
}

func TestSyncMissingContractWritesEmptyValue(t *testing.T) {
	sync, env := newSyncEnvForTest(parseRecord(t, `{
		"contracts": {"rideOrder": "0x01"},
		"configuration": {}
	}`), nil)

	_, err := sync.Run(context.Background())
	require.NoError(t, err)

	vars := env.written.Values
	// Keys are written as empty strings, not omitted
	value, ok := vars["RATING_SYSTEM_ADDRESS"]
	assert.True(t, ok)
	assert.Equal(t, "", value)
	wallet, ok := vars["PLATFORM_WALLET"]
	assert.True(t, ok)
	assert.Equal(t, "", wallet)
}

func TestSyncMissingRecordDoesNotWrite(t *testing.T) {
	sync, env := newSyncEnvForTest(nil, map[string]string{"FOO": "bar"})

	_, err := sync.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrDeploymentNotFound)
	assert.Zero(t, env.writes)
}

func TestSyncDropsUnrecognizedKeys(t *testing.T) {
	sync, env := newSyncEnvForTest(parseRecord(t, fullRecord), map[string]string{
		"FOO":      "bar",
		"ZED":      "1",
		"CHAIN_ID": "42",
	})

	result, err := sync.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"FOO", "ZED"}, result.DroppedKeys)
	assert.NotContains(t, env.written.Values, "FOO")
	assert.NotContains(t, env.written.Values, "ZED")
}

func TestSyncUsesConfiguredDefaults(t *testing.T) {
	record := parseRecord(t, fullRecord)
	sync, env := newSyncEnvForTest(record, nil)
	sync.cfg.Defaults = config.EnvDefaults{
		RPCURL:          "http://10.0.0.1:8545",
		ChainID:         "31337",
		PlatformFeeRate: "7",
	}

	_, err := sync.Run(context.Background())
	require.NoError(t, err)

	vars := env.written.Values
	assert.Equal(t, "http://10.0.0.1:8545", vars["RPC_URL"])
	assert.Equal(t, "31337", vars["CHAIN_ID"])
	assert.Equal(t, "7", vars["PLATFORM_FEE_RATE"])
}

func TestSyncStampsGeneratedAt(t *testing.T) {
	sync, env := newSyncEnvForTest(parseRecord(t, fullRecord), nil)

	_, err := sync.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), env.written.GeneratedAt)
}
