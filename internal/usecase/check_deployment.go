package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain/models"
)

// CheckStatus classifies the outcome of a single env key check.
type CheckStatus string

const (
	CheckOK      CheckStatus = "ok"
	CheckMissing CheckStatus = "missing"
	CheckInvalid CheckStatus = "invalid"
	CheckNoCode  CheckStatus = "no-code"
	CheckError   CheckStatus = "error"
)

// CheckEntry is the result of checking one env key.
type CheckEntry struct {
	EnvKey  string
	Address string
	Status  CheckStatus
	Detail  string
}

// CheckResult contains the outcome of a check run.
type CheckResult struct {
	EnvPath       string
	Entries       []CheckEntry
	ChainIDWant   string // CHAIN_ID from the env file, when probed
	ChainIDGot    string // chain ID reported by the node, when probed
	ChainIDProbed bool
	Failed        int
}

// Passed reports whether every check succeeded.
func (r *CheckResult) Passed() bool {
	return r.Failed == 0 && (!r.ChainIDProbed || r.ChainIDWant == r.ChainIDGot)
}

// CheckOptions contains options for the check use case.
type CheckOptions struct {
	// RPC enables on-chain probing: chain ID comparison and deployed-code
	// checks against the node at RPC_URL.
	RPC bool
}

// CheckDeployment validates the synchronized env file: address keys must hold
// well-formed hex addresses, and optionally must have deployed code on chain.
type CheckDeployment struct {
	cfg      *config.RuntimeConfig
	env      EnvRepository
	dialer   ChainDialer
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckDeployment creates a new check use case.
func NewCheckDeployment(
	cfg *config.RuntimeConfig,
	env EnvRepository,
	dialer ChainDialer,
	progress ProgressSink,
	log *slog.Logger,
) *CheckDeployment {
	return &CheckDeployment{
		cfg:      cfg,
		env:      env,
		dialer:   dialer,
		progress: progress,
		log:      log,
	}
}

// Run performs the checks.
func (c *CheckDeployment) Run(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	vars, err := c.env.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.env.Path(), err)
	}
	c.log.Debug("loaded env file", "path", c.env.Path(), "keys", len(vars))

	result := &CheckResult{EnvPath: c.env.Path()}

	var client ChainClient
	if opts.RPC {
		rpcURL := vars[models.KeyRPCURL]
		if rpcURL == "" {
			rpcURL = c.cfg.Defaults.RPCURL
		}

		c.progress.Start(fmt.Sprintf("Connecting to %s", rpcURL))
		client, err = c.dialer.Dial(ctx, rpcURL)
		c.progress.Stop()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
		}
		defer client.Close()

		chainID, err := client.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query chain ID: %w", err)
		}
		result.ChainIDProbed = true
		result.ChainIDWant = vars[models.KeyChainID]
		result.ChainIDGot = chainID.String()
	}

	// Contract addresses: format check plus optional deployed-code probe.
	for _, b := range models.ContractBindings {
		entry := c.checkAddress(ctx, client, b.EnvKey, vars[b.EnvKey], true)
		if entry.Status != CheckOK {
			result.Failed++
		}
		result.Entries = append(result.Entries, entry)
	}

	// Platform wallet is an EOA: format check only.
	wallet := c.checkAddress(ctx, nil, models.KeyPlatformWallet, vars[models.KeyPlatformWallet], false)
	if wallet.Status != CheckOK {
		result.Failed++
	}
	result.Entries = append(result.Entries, wallet)

	return result, nil
}

func (c *CheckDeployment) checkAddress(ctx context.Context, client ChainClient, key, value string, wantCode bool) CheckEntry {
	entry := CheckEntry{EnvKey: key, Address: value}

	if value == "" {
		entry.Status = CheckMissing
		entry.Detail = "no address set"
		return entry
	}
	if !common.IsHexAddress(value) {
		entry.Status = CheckInvalid
		entry.Detail = "not a valid hex address"
		return entry
	}

	if client != nil && wantCode {
		c.progress.Start(fmt.Sprintf("Checking %s", key))
		code, err := client.CodeAt(ctx, common.HexToAddress(value))
		c.progress.Stop()
		if err != nil {
			entry.Status = CheckError
			entry.Detail = err.Error()
			return entry
		}
		if len(code) == 0 {
			entry.Status = CheckNoCode
			entry.Detail = "no contract code at address"
			return entry
		}
	}

	entry.Status = CheckOK
	return entry
}
