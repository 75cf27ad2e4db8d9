// Package model holds the value types shared by the verifier surfaces.
package model

// Network names the chain the verifier serves.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)
