package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// Dialer opens JSON-RPC connections for the check use case.
type Dialer struct {
	cfg *config.RuntimeConfig
}

// NewDialer creates a new dialer.
func NewDialer(cfg *config.RuntimeConfig) *Dialer {
	return &Dialer{cfg: cfg}
}

// Dial connects to the node at rpcURL.
func (d *Dialer) Dial(ctx context.Context, rpcURL string) (usecase.ChainClient, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}
	return &Client{eth: client}, nil
}

// Client wraps ethclient with the minimal surface check needs.
type Client struct {
	eth *ethclient.Client
}

// ChainID returns the chain ID reported by the node.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.eth.ChainID(ctx)
}

// CodeAt returns the deployed code at an address, at the latest block.
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	return c.eth.CodeAt(ctx, address, nil)
}

// Close closes the underlying connection.
func (c *Client) Close() {
	c.eth.Close()
}

// Ensure the adapter implements the ports
var (
	_ usecase.ChainDialer = (*Dialer)(nil)
	_ usecase.ChainClient = (*Client)(nil)
)
