// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
)

// BuildConfiguration is the static record consumed by an external
// smart-contract build/deploy toolchain. It names the compiler release, the
// single target network with its signing credentials, and the credentials of
// the contract-verification service.
//
// All fields are unexported: once built by [NewBuildConfiguration] the value
// cannot be changed, and accessors hand out copies of any slices.
type BuildConfiguration struct {
	compilerVersion string
	network         Network
	verification    Verification
}

// Network describes the remote network the toolchain deploys to.
type Network struct {
	// Name is the identifier the toolchain uses to select the network
	// (e.g. "kovan").
	Name string

	// EndpointURL is the JSON-RPC endpoint of the network.
	EndpointURL string

	// SigningKeys are the 0x-prefixed hex private keys used to sign
	// transactions on the network.
	SigningKeys []string
}

// Verification holds credentials for the contract-source verification
// service.
type Verification struct {
	// APIKey authenticates requests to the verification service.
	APIKey string
}

// NewBuildConfiguration constructs a [BuildConfiguration]. The signing keys of
// network are copied, so later changes to the caller's slice are not visible
// through the returned value.
func NewBuildConfiguration(compilerVersion string, network Network, verification Verification) BuildConfiguration {
	network.SigningKeys = slices.Clone(network.SigningKeys)

	return BuildConfiguration{
		compilerVersion: compilerVersion,
		network:         network,
		verification:    verification,
	}
}

// CompilerVersion returns the semantic version of the compiler release the
// toolchain must use.
func (c BuildConfiguration) CompilerVersion() string {
	return c.compilerVersion
}

// Network returns a copy of the target network settings.
func (c BuildConfiguration) Network() Network {
	n := c.network
	n.SigningKeys = slices.Clone(c.network.SigningKeys)
	return n
}

// Verification returns the verification-service settings.
func (c BuildConfiguration) Verification() Verification {
	return c.verification
}

// Document returns the configuration in the shape the toolchain reads:
//
//	{solidity, networks: {<name>: {url, accounts}}, etherscan: {apiKey}}
func (c BuildConfiguration) Document() BuildDocument {
	accounts := slices.Clone(c.network.SigningKeys)
	if accounts == nil {
		accounts = []string{}
	}

	return BuildDocument{
		Solidity: c.compilerVersion,
		Networks: map[string]NetworkDocument{
			c.network.Name: {
				URL:      c.network.EndpointURL,
				Accounts: accounts,
			},
		},
		Etherscan: EtherscanDocument{
			APIKey: c.verification.APIKey,
		},
	}
}

// MarshalJSON encodes the configuration as its [BuildDocument].
func (c BuildConfiguration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// MarshalYAML encodes the configuration as its [BuildDocument].
func (c BuildConfiguration) MarshalYAML() (any, error) {
	return c.Document(), nil
}

// BuildDocument is the serialized form of a [BuildConfiguration].
type BuildDocument struct {
	Solidity  string                     `json:"solidity" yaml:"solidity"`
	Networks  map[string]NetworkDocument `json:"networks" yaml:"networks"`
	Etherscan EtherscanDocument          `json:"etherscan" yaml:"etherscan"`
}

// NetworkDocument is the serialized form of a [Network], keyed by its name in
// [BuildDocument.Networks].
type NetworkDocument struct {
	URL      string   `json:"url" yaml:"url"`
	Accounts []string `json:"accounts" yaml:"accounts"`
}

// EtherscanDocument is the serialized form of a [Verification].
type EtherscanDocument struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
}
