// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aia-labs/marketplace-cli/internal/testutils"
	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ArtifactRegistry(t *testing.T) {
	require := require.New(t)
	ap := NewTestApp(t)
	ap.Conf.SetConfigValue(constants.ConfigArtifactsKey, "/project/artifacts")
	testutils.WriteMarketplaceArtifact(t, ap.Fs, "/project/artifacts", testutils.MarketplaceBytecode)

	registry := ap.ArtifactRegistry()
	require.Equal("/project/artifacts", registry.Root())
	factory, err := registry.ContractFactory(constants.MarketplaceContractName)
	require.NoError(err)
	require.Equal(constants.MarketplaceContractName, factory.ContractName)
}

func Test_SelectedNetwork_Default(t *testing.T) {
	ap := NewTestApp(t)
	network, err := ap.SelectedNetwork()
	require.NoError(t, err)
	assert.True(t, network.Simulated())
	assert.Equal(t, constants.SimulatedNetworkName, network.Name)

	ap.Conf.SetConfigValue(constants.ConfigNetworkKey, "mainnet")
	_, err = ap.SelectedNetwork()
	require.ErrorIs(t, err, clierrors.ErrEnvironment)
}

func Test_Connect_IsLazy(t *testing.T) {
	require := require.New(t)
	ap := NewTestApp(t)
	network, err := ap.SelectedNetwork()
	require.NoError(err)
	chain := ap.Connect(network)
	defer chain.Close()

	signer, err := ap.SignerProvider(network).PrimarySigner(context.Background())
	require.NoError(err)
	balance, err := chain.Balance(context.Background(), signer.Address)
	require.NoError(err)
	require.Equal(1, balance.Sign())
}

func Test_DeploymentRecords(t *testing.T) {
	require := require.New(t)
	ap := NewTestApp(t)

	records, err := ap.ReadDeploymentRecords()
	require.NoError(err)
	require.Empty(records)

	first := DeploymentRecord{
		Network:      "aia-testnet",
		ChainID:      1320,
		ContractName: constants.MarketplaceContractName,
		Address:      "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TxHash:       "0x6b4e4f1b4e5e",
		BlockNumber:  12,
		Deployer:     "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Timestamp:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	second := first
	second.Address = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	second.BlockNumber = 13
	second.Timestamp = first.Timestamp.Add(time.Hour)

	ap.AddDeploymentRecord(second)
	ap.AddDeploymentRecord(first)

	exists, err := afero.Exists(ap.Fs, filepath.Join(ap.GetBaseDir(), constants.DeploymentsFileName))
	require.NoError(err)
	require.True(exists)

	records, err = ap.ReadDeploymentRecords()
	require.NoError(err)
	if diff := cmp.Diff([]DeploymentRecord{first, second}, records); diff != "" {
		t.Errorf("unexpected records (-want +got):\n%s", diff)
	}
}

func Test_DeploymentRecords_Malformed(t *testing.T) {
	ap := NewTestApp(t)
	require.NoError(t, afero.WriteFile(ap.Fs, ap.GetDeploymentsPath(), []byte("{"), constants.WriteReadReadPerms))
	_, err := ap.ReadDeploymentRecords()
	require.Error(t, err)

	// non-critical: the malformed file is left untouched
	ap.AddDeploymentRecord(DeploymentRecord{Network: "aia-testnet"})
	bs, err := afero.ReadFile(ap.Fs, ap.GetDeploymentsPath())
	require.NoError(t, err)
	require.Equal(t, "{", string(bs))
}
