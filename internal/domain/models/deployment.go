package models

// PlatformConfig is the optional configuration section of a deployment record.
type PlatformConfig struct {
	PlatformWallet string `json:"platformWallet"`
}

// DeploymentRecord is a deployment artifact produced by a contract deployment
// run. Contracts maps logical contract names (e.g. "rideOrder") to addresses.
// The record is read-only: ridesync never writes deployment files.
type DeploymentRecord struct {
	Contracts     map[string]string `json:"contracts"`
	Configuration PlatformConfig    `json:"configuration"`
}

// Address returns the deployed address for a logical contract name, or the
// empty string when the contract is absent from the record.
func (r *DeploymentRecord) Address(name string) string {
	return r.Contracts[name]
}
