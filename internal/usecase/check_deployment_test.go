package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride-labs/ridesync/internal/config"
)

// fakeChainClient serves canned chain state.
type fakeChainClient struct {
	chainID *big.Int
	code    map[common.Address][]byte
	closed  bool
}

func (f *fakeChainClient) ChainID(ctx context.Context) (*big.Int, error) {
	return f.chainID, nil
}

func (f *fakeChainClient) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	return f.code[address], nil
}

func (f *fakeChainClient) Close() { f.closed = true }

type fakeDialer struct {
	client *fakeChainClient
	err    error
	rpcURL string
}

func (f *fakeDialer) Dial(ctx context.Context, rpcURL string) (ChainClient, error) {
	f.rpcURL = rpcURL
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

const (
	goodAddr   = "0x1111111111111111111111111111111111111111"
	emptyAddr  = "0x2222222222222222222222222222222222222222"
	walletAddr = "0x6666666666666666666666666666666666666666"
)

func newCheckForTest(vars map[string]string, dialer ChainDialer) *CheckDeployment {
	cfg := &config.RuntimeConfig{
		Defaults: config.EnvDefaults{RPCURL: config.DefaultRPCURL},
	}
	env := &fakeEnv{vars: vars}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCheckDeployment(cfg, env, dialer, NopProgress{}, log)
}

func fullEnv() map[string]string {
	return map[string]string{
		"RPC_URL":                    "http://127.0.0.1:8545",
		"CHAIN_ID":                   "1337",
		"RIDE_ORDER_ADDRESS":         goodAddr,
		"PAYMENT_ESCROW_ADDRESS":     goodAddr,
		"USER_REGISTRY_ADDRESS":      goodAddr,
		"RATING_SYSTEM_ADDRESS":      goodAddr,
		"DISPUTE_RESOLUTION_ADDRESS": goodAddr,
		"PLATFORM_WALLET":            walletAddr,
		"PLATFORM_FEE_RATE":          "5",
	}
}

func TestCheckFormatOnly(t *testing.T) {
	check := newCheckForTest(fullEnv(), &fakeDialer{})

	result, err := check.Run(context.Background(), CheckOptions{})
	require.NoError(t, err)

	assert.True(t, result.Passed())
	assert.False(t, result.ChainIDProbed)
	require.Len(t, result.Entries, 6)
	for _, entry := range result.Entries {
		assert.Equal(t, CheckOK, entry.Status, entry.EnvKey)
	}
}

func TestCheckFlagsMissingAndInvalidAddresses(t *testing.T) {
	vars := fullEnv()
	vars["RATING_SYSTEM_ADDRESS"] = ""
	vars["USER_REGISTRY_ADDRESS"] = "not-an-address"

	check := newCheckForTest(vars, &fakeDialer{})

	result, err := check.Run(context.Background(), CheckOptions{})
	require.NoError(t, err)

	assert.False(t, result.Passed())
	assert.Equal(t, 2, result.Failed)

	byKey := map[string]CheckEntry{}
	for _, entry := range result.Entries {
		byKey[entry.EnvKey] = entry
	}
	assert.Equal(t, CheckMissing, byKey["RATING_SYSTEM_ADDRESS"].Status)
	assert.Equal(t, CheckInvalid, byKey["USER_REGISTRY_ADDRESS"].Status)
}

func TestCheckWithRPC(t *testing.T) {
	client := &fakeChainClient{
		chainID: big.NewInt(1337),
		code: map[common.Address][]byte{
			common.HexToAddress(goodAddr): {0x60, 0x80},
		},
	}
	dialer := &fakeDialer{client: client}

	check := newCheckForTest(fullEnv(), dialer)

	result, err := check.Run(context.Background(), CheckOptions{RPC: true})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8545", dialer.rpcURL)
	assert.True(t, result.ChainIDProbed)
	assert.Equal(t, "1337", result.ChainIDGot)
	assert.True(t, result.Passed())
	assert.True(t, client.closed)
}

func TestCheckWithRPCFlagsMissingCode(t *testing.T) {
	vars := fullEnv()
	vars["PAYMENT_ESCROW_ADDRESS"] = emptyAddr

	client := &fakeChainClient{
		chainID: big.NewInt(1337),
		code: map[common.Address][]byte{
			common.HexToAddress(goodAddr): {0x60, 0x80},
		},
	}
	check := newCheckForTest(vars, &fakeDialer{client: client})

	result, err := check.Run(context.Background(), CheckOptions{RPC: true})
	require.NoError(t, err)

	assert.False(t, result.Passed())
	byKey := map[string]CheckEntry{}
	for _, entry := range result.Entries {
		byKey[entry.EnvKey] = entry
	}
	assert.Equal(t, CheckNoCode, byKey["PAYMENT_ESCROW_ADDRESS"].Status)
	// The wallet is an EOA, code is not required
	assert.Equal(t, CheckOK, byKey["PLATFORM_WALLET"].Status)
}

func TestCheckChainIDMismatch(t *testing.T) {
	client := &fakeChainClient{
		chainID: big.NewInt(31337),
		code: map[common.Address][]byte{
			common.HexToAddress(goodAddr): {0x60},
		},
	}
	check := newCheckForTest(fullEnv(), &fakeDialer{client: client})

	result, err := check.Run(context.Background(), CheckOptions{RPC: true})
	require.NoError(t, err)

	assert.Equal(t, "1337", result.ChainIDWant)
	assert.Equal(t, "31337", result.ChainIDGot)
	assert.False(t, result.Passed())
}

func TestCheckDialFailure(t *testing.T) {
	check := newCheckForTest(fullEnv(), &fakeDialer{err: errors.New("connection refused")})

	_, err := check.Run(context.Background(), CheckOptions{RPC: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
