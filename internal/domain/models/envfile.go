package models

import "time"

// Well-known environment keys written by the synchronizer. Anything else
// found in an existing .env is dropped on rewrite.
const (
	KeyRPCURL            = "RPC_URL"
	KeyChainID           = "CHAIN_ID"
	KeyPaymentEscrow     = "PAYMENT_ESCROW_ADDRESS"
	KeyRideOrder         = "RIDE_ORDER_ADDRESS"
	KeyUserRegistry      = "USER_REGISTRY_ADDRESS"
	KeyRatingSystem      = "RATING_SYSTEM_ADDRESS"
	KeyDisputeResolution = "DISPUTE_RESOLUTION_ADDRESS"
	KeyPlatformWallet    = "PLATFORM_WALLET"
	KeyPlatformFeeRate   = "PLATFORM_FEE_RATE"
)

// ContractBinding ties a logical contract name from the deployment record to
// the environment key it populates.
type ContractBinding struct {
	Contract string
	EnvKey   string
}

// ContractBindings lists the synchronized contracts in summary order.
// Deployment data is authoritative for these keys: they are overwritten on
// every sync, and written even when the record omits the contract.
var ContractBindings = []ContractBinding{
	{Contract: "rideOrder", EnvKey: KeyRideOrder},
	{Contract: "paymentEscrow", EnvKey: KeyPaymentEscrow},
	{Contract: "userRegistry", EnvKey: KeyUserRegistry},
	{Contract: "ratingSystem", EnvKey: KeyRatingSystem},
	{Contract: "disputeResolution", EnvKey: KeyDisputeResolution},
}

// EnvFile is the fully merged environment state handed to the writer.
// Values holds the nine recognized keys; GeneratedAt stamps the header.
type EnvFile struct {
	GeneratedAt time.Time
	Values      map[string]string
}
