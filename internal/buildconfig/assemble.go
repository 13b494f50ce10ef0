// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package buildconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/deploy-config/models"
)

const (
	// CompilerVersion is the Solidity compiler release the toolchain uses.
	CompilerVersion = "0.8.7"

	// NetworkName identifies the single target network.
	NetworkName = "kovan"

	// SigningKeyPrefix is prepended verbatim to the raw private key.
	SigningKeyPrefix = "0x"
)

// Environment variable names read by [Assemble].
const (
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvRPCURL          = "KOVAN_RPC_URL"
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
)

// RequiredVariables lists every variable [Assemble] reads, in declaration
// order.
var RequiredVariables = []string{EnvPrivateKey, EnvRPCURL, EnvEtherscanAPIKey}

// secrets mirrors the three environment variables. Absent variables are left
// as the empty string.
type secrets struct {
	PrivateKey      string `env:"PRIVATE_KEY" validate:"required"`
	RPCURL          string `env:"KOVAN_RPC_URL" validate:"required"`
	EtherscanAPIKey string `env:"ETHERSCAN_API_KEY" validate:"required"`
}

// Assemble builds the configuration from environ.
//
// The signing key is SigningKeyPrefix followed by the raw PRIVATE_KEY value
// with no check of its format or length. KOVAN_RPC_URL and ETHERSCAN_API_KEY
// are copied unchanged. A missing variable becomes the empty string, so an
// unset PRIVATE_KEY produces the signing key "0x". Assemble performs no I/O
// and returns equal values for equal inputs.
func Assemble(environ map[string]string) (models.BuildConfiguration, error) {
	s, err := parseSecrets(environ)
	if err != nil {
		return models.BuildConfiguration{}, err
	}

	return models.NewBuildConfiguration(
		CompilerVersion,
		models.Network{
			Name:        NetworkName,
			EndpointURL: s.RPCURL,
			SigningKeys: []string{SigningKeyPrefix + s.PrivateKey},
		},
		models.Verification{
			APIKey: s.EtherscanAPIKey,
		},
	), nil
}

func parseSecrets(environ map[string]string) (*secrets, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	s := &secrets{}
	if err := env.ParseWithOptions(s, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error parsing build secrets: %w", err)
	}

	return s, nil
}
