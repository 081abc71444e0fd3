// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/crypto"
)

// Signer is an account able to sign transactions
type Signer struct {
	Address    common.Address
	privateKey *ecdsa.PrivateKey
}

func NewSigner(privateKeyHex string) (*Signer, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, err
	}
	return &Signer{
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		privateKey: privateKey,
	}, nil
}

// TransactOpts returns the options to sign transactions for [chainID] on behalf of the signer
func (s *Signer) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.privateKey, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

func (s *Signer) String() string {
	return s.Address.Hex()
}

// Provider gives access to the signers configured for a network
type Provider struct {
	network models.Network
}

func NewProvider(network models.Network) *Provider {
	return &Provider{network: network}
}

// Signers returns the network signers, in configuration order. The first one
// is the primary signer.
func (p *Provider) Signers(context.Context) ([]*Signer, error) {
	keys := p.network.Accounts
	if len(keys) == 0 && p.network.Simulated() {
		keys = []string{constants.DevPrivateKey}
	}
	if len(keys) == 0 {
		return nil, clierrors.NewEnvironmentError(
			nil,
			"no accounts configured for network %q, set %s_PRIVATE_KEY or the network accounts",
			p.network.Name,
			constants.EnvPrefix,
		)
	}
	signers := make([]*Signer, 0, len(keys))
	for i, key := range keys {
		s, err := NewSigner(key)
		if err != nil {
			// never show the key itself
			return nil, clierrors.NewEnvironmentError(
				nil,
				"invalid private key at index %d for network %q",
				i,
				p.network.Name,
			)
		}
		signers = append(signers, s)
	}
	return signers, nil
}

// PrimarySigner returns the first configured signer
func (p *Provider) PrimarySigner(ctx context.Context) (*Signer, error) {
	signers, err := p.Signers(ctx)
	if err != nil {
		return nil, err
	}
	return signers[0], nil
}

// Addresses returns the addresses of the network signers
func (p *Provider) Addresses(ctx context.Context) ([]common.Address, error) {
	signers, err := p.Signers(ctx)
	if err != nil {
		return nil, err
	}
	addrs := make([]common.Address, len(signers))
	for i, s := range signers {
		addrs[i] = s.Address
	}
	return addrs, nil
}

// PrivateKeyToAddress returns the address derived from [privateKeyHex]
func PrivateKeyToAddress(privateKeyHex string) (common.Address, error) {
	s, err := NewSigner(privateKeyHex)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid private key: %w", err)
	}
	return s.Address, nil
}
