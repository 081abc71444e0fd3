// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package signer

import (
	"context"
	"math/big"
	"testing"

	"github.com/aia-labs/marketplace-cli/internal/testutils"
	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/ava-labs/libevm/common"
	"github.com/stretchr/testify/require"
)

// address of constants.DevPrivateKey
var devAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestNewSigner(t *testing.T) {
	keys, addrs := testutils.GeneratePrivateKeys(t, 1)
	tests := []struct {
		name string
		key  string
	}{
		{name: "plain", key: keys[0]},
		{name: "0x prefix", key: "0x" + keys[0]},
		{name: "surrounding spaces", key: "  " + keys[0] + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSigner(tt.key)
			require.NoError(t, err)
			require.Equal(t, addrs[0], s.Address)
			require.Equal(t, addrs[0].Hex(), s.String())
		})
	}

	_, err := NewSigner("not a key")
	require.Error(t, err)
}

func TestPrivateKeyToAddress(t *testing.T) {
	require := require.New(t)
	addr, err := PrivateKeyToAddress(constants.DevPrivateKey)
	require.NoError(err)
	require.Equal(devAddress, addr)

	_, err = PrivateKeyToAddress("0x1234")
	require.ErrorContains(err, "invalid private key")
}

func TestTransactOpts(t *testing.T) {
	require := require.New(t)
	s, err := NewSigner(constants.DevPrivateKey)
	require.NoError(err)
	ctx := context.Background()
	opts, err := s.TransactOpts(ctx, big.NewInt(constants.SimulatedChainID))
	require.NoError(err)
	require.Equal(devAddress, opts.From)
	require.Equal(ctx, opts.Context)
	require.NotNil(opts.Signer)

	_, err = s.TransactOpts(ctx, nil)
	require.Error(err)
}

func TestProvider_SimulatedDefault(t *testing.T) {
	require := require.New(t)
	p := NewProvider(models.NewSimulatedNetwork())
	signers, err := p.Signers(context.Background())
	require.NoError(err)
	require.Len(signers, 1)
	require.Equal(devAddress, signers[0].Address)

	primary, err := p.PrimarySigner(context.Background())
	require.NoError(err)
	require.Equal(devAddress, primary.Address)
}

func TestProvider_ConfiguredAccounts(t *testing.T) {
	require := require.New(t)
	keys, addrs := testutils.GeneratePrivateKeys(t, 3)
	network := models.NewSimulatedNetwork()
	network.Accounts = keys
	p := NewProvider(network)

	got, err := p.Addresses(context.Background())
	require.NoError(err)
	require.Equal(addrs, got)

	primary, err := p.PrimarySigner(context.Background())
	require.NoError(err)
	require.Equal(addrs[0], primary.Address)
}

func TestProvider_NoAccounts(t *testing.T) {
	network := models.Network{Name: "aia-testnet", RPCURL: "https://rpc.example.org"}
	_, err := NewProvider(network).Signers(context.Background())
	require.ErrorIs(t, err, clierrors.ErrEnvironment)
	require.ErrorContains(t, err, "MARKETPLACE_PRIVATE_KEY")
}

func TestProvider_InvalidKey(t *testing.T) {
	keys, _ := testutils.GeneratePrivateKeys(t, 1)
	secret := "deadbeefdeadbeef"
	network := models.Network{
		Name:     "aia-testnet",
		RPCURL:   "https://rpc.example.org",
		Accounts: []string{keys[0], secret},
	}
	_, err := NewProvider(network).Signers(context.Background())
	require.ErrorIs(t, err, clierrors.ErrEnvironment)
	require.ErrorContains(t, err, "index 1")
	require.NotContains(t, err.Error(), secret)
}
