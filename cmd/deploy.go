// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"context"
	"time"

	"github.com/aia-labs/marketplace-cli/pkg/application"
	"github.com/aia-labs/marketplace-cli/pkg/cobrautils"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/deployer"
	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var contractName string

// marketplace deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the NFTMarketplace contract",
		Long: `The deploy command deploys the NFTMarketplace contract into the selected
network, signing with the first configured account, and prints the contract
address together with the remaining balance of the deployer.

The contract is taken from the compilation artifacts directory.`,
		RunE: deployContract,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVar(&contractName, "contract", constants.MarketplaceContractName, "name of the contract to deploy")
	return cmd
}

func deployContract(cmd *cobra.Command, _ []string) error {
	if err := runDeployment(cmd.Context()); err != nil {
		return cobrautils.NewFailureError("Error during deployment", err)
	}
	ux.Logger.PrintToUser("Deployment script executed successfully.")
	return nil
}

func runDeployment(ctx context.Context) error {
	network, err := app.SelectedNetwork()
	if err != nil {
		return err
	}
	chain := app.Connect(network)
	defer chain.Close()

	d := deployer.New(
		app.SignerProvider(network),
		app.ArtifactRegistry(),
		chain,
		deployer.WithContractName(contractName),
		deployer.WithSymbol(network.Symbol),
		deployer.WithUserLog(ux.Logger),
	)
	result, err := d.Deploy(ctx)
	if err != nil {
		return err
	}
	app.Log.Info("contract deployed",
		zap.String("network", network.Name),
		zap.String("contract", result.ContractName),
		zap.Stringer("address", result.ContractAddress),
		zap.Stringer("tx", result.TxHash),
	)
	if network.Simulated() {
		// nothing survives the process
		return nil
	}
	chainID, err := chain.ChainID(ctx)
	if err != nil {
		return err
	}
	record := application.DeploymentRecord{
		Network:      network.Name,
		ChainID:      chainID.Uint64(),
		ContractName: result.ContractName,
		Address:      result.ContractAddress.Hex(),
		TxHash:       result.TxHash.Hex(),
		Deployer:     result.DeployerAddress.Hex(),
		Timestamp:    time.Now().UTC(),
	}
	if result.BlockNumber != nil {
		record.BlockNumber = result.BlockNumber.Uint64()
	}
	app.AddDeploymentRecord(record)
	return nil
}
