// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"strings"
	"time"

	"github.com/aia-labs/marketplace-cli/pkg/constants"
)

// Network describes an EVM endpoint the contract can be deployed into,
// together with the accounts allowed to sign for it
type Network struct {
	Name                string        `json:"name" yaml:"name"`
	RPCURL              string        `json:"url,omitempty" yaml:"url,omitempty"`
	ChainID             uint64        `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Accounts            []string      `json:"-" yaml:"-"`
	Symbol              string        `json:"symbol" yaml:"symbol"`
	Confirmations       uint64        `json:"confirmations" yaml:"confirmations"`
	ConfirmationTimeout time.Duration `json:"confirmationTimeout" yaml:"confirmationTimeout"`
	RequestTimeout      time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	PollInterval        time.Duration `json:"pollInterval" yaml:"pollInterval"`
	// zero means the gas limit is estimated
	GasLimit uint64 `json:"gas,omitempty" yaml:"gas,omitempty"`
}

func NewSimulatedNetwork() Network {
	return Network{
		Name:    constants.SimulatedNetworkName,
		ChainID: constants.SimulatedChainID,
	}.WithDefaults()
}

// Simulated indicates the network runs in process instead of through a RPC endpoint
func (n Network) Simulated() bool {
	return n.RPCURL == "" || strings.HasPrefix(n.RPCURL, constants.SimulatedScheme)
}

// WithDefaults fills unset fields with their default values
func (n Network) WithDefaults() Network {
	if n.Symbol == "" {
		n.Symbol = constants.NativeTokenSymbol
	}
	if n.Confirmations == 0 {
		n.Confirmations = constants.DefaultConfirmations
	}
	if n.ConfirmationTimeout == 0 {
		n.ConfirmationTimeout = constants.DefaultConfirmationTimeout
	}
	if n.RequestTimeout == 0 {
		n.RequestTimeout = constants.APIRequestTimeout
	}
	if n.PollInterval == 0 {
		n.PollInterval = constants.DefaultPollInterval
	}
	if n.Simulated() && n.ChainID == 0 {
		n.ChainID = constants.SimulatedChainID
	}
	return n
}

// Endpoint is the url to show to the user
func (n Network) Endpoint() string {
	if n.Simulated() {
		return constants.SimulatedScheme + n.Name
	}
	return n.RPCURL
}
