package domain

import "errors"

// Sentinel errors shared across use cases and adapters.
var (
	// ErrDeploymentNotFound is returned when no deployment record exists for
	// the requested network. This is the only recoverable failure: callers
	// report it and exit instead of surfacing a raw fault.
	ErrDeploymentNotFound = errors.New("deployment record not found")

	// ErrContractNotFound is returned when a contract lookup matches nothing.
	ErrContractNotFound = errors.New("contract not found")

	// ErrNoNetworks is returned when the deployments directory holds no records.
	ErrNoNetworks = errors.New("no deployment records found")

	// ErrChecksFailed signals a failed validation whose details were already
	// rendered; callers translate it into a non-zero exit without reprinting.
	ErrChecksFailed = errors.New("env file failed validation")
)
