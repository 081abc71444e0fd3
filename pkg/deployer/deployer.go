// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deployer deploys the marketplace contract: it obtains the deployer
// signer, resolves the contract factory, submits the creation transaction,
// waits for it to be confirmed and reports the contract address together
// with the deployer balance.
package deployer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/aia-labs/marketplace-cli/pkg/artifacts"
	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/evm"
	"github.com/aia-labs/marketplace-cli/pkg/signer"
	"github.com/aia-labs/marketplace-cli/pkg/utils"
	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/ava-labs/libevm/common"
)

// SignerProvider gives the accounts able to sign the deployment
type SignerProvider interface {
	Signers(ctx context.Context) ([]*signer.Signer, error)
}

// ArtifactRegistry resolves contract names into factories
type ArtifactRegistry interface {
	ContractFactory(name string) (*artifacts.ContractFactory, error)
}

// Chain is the blockchain endpoint the contract is deployed into
type Chain interface {
	Deploy(ctx context.Context, s *signer.Signer, factory *artifacts.ContractFactory, args ...interface{}) (*evm.Deployment, error)
	WaitForDeployment(ctx context.Context, d *evm.Deployment) (common.Address, error)
	Balance(ctx context.Context, address common.Address) (*big.Int, error)
}

// Result holds what a successful deployment produced
type Result struct {
	ContractName     string
	DeployerAddress  common.Address
	ContractAddress  common.Address
	TxHash           common.Hash
	BlockNumber      *big.Int
	Balance          *big.Int
	FormattedBalance string
	Symbol           string
}

type Option func(*Deployer)

// WithContractName deploys [name] instead of NFTMarketplace
func WithContractName(name string) Option {
	return func(d *Deployer) {
		d.contractName = name
	}
}

// WithSymbol sets the native token symbol shown next to the balance
func WithSymbol(symbol string) Option {
	return func(d *Deployer) {
		d.symbol = symbol
	}
}

func WithUserLog(log *ux.UserLog) Option {
	return func(d *Deployer) {
		d.log = log
	}
}

type Deployer struct {
	signers      SignerProvider
	registry     ArtifactRegistry
	chain        Chain
	log          *ux.UserLog
	contractName string
	symbol       string
}

func New(signers SignerProvider, registry ArtifactRegistry, chain Chain, opts ...Option) *Deployer {
	d := &Deployer{
		signers:      signers,
		registry:     registry,
		chain:        chain,
		log:          ux.Logger,
		contractName: constants.MarketplaceContractName,
		symbol:       constants.NativeTokenSymbol,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = ux.New(nil, nil, nil)
	}
	return d
}

// Deploy runs the deployment steps in order, stopping at the first failure.
// Nothing is retried.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	d.log.PrintToUser("Initializing contract deployment...")
	deployer, err := d.primarySigner(ctx)
	if err != nil {
		return nil, err
	}
	d.log.PrintToUser("Deployer address: %s", deployer.Address.Hex())

	factory, err := d.registry.ContractFactory(d.contractName)
	if err != nil {
		return nil, err
	}
	d.log.PrintToUser("Contract factory for '%s' retrieved.", d.contractName)

	d.log.PrintToUser("Deploying the contract...")
	deployment, err := d.chain.Deploy(ctx, deployer, factory)
	if err != nil {
		return nil, err
	}
	d.log.Info("deployment transaction %s sent, expecting contract at %s", deployment.TxHash().Hex(), deployment.ExpectedAddress().Hex())

	d.log.PrintToUser("Waiting for the deployment to be confirmed...")
	contractAddress, err := d.chain.WaitForDeployment(ctx, deployment)
	if err != nil {
		return nil, err
	}
	if contractAddress == (common.Address{}) {
		return nil, fmt.Errorf("confirmed deployment of %s has no contract address", d.contractName)
	}
	d.log.PrintToUser("%s contract deployed successfully!", d.contractName)
	d.log.PrintToUser("Contract Address: %s", contractAddress.Hex())

	balance, err := d.chain.Balance(ctx, deployer.Address)
	if err != nil {
		return nil, err
	}
	formatted := utils.FormatDefaultDenomination(balance)
	d.log.PrintToUser("Deployer's balance: %s %s", formatted, d.symbol)

	result := &Result{
		ContractName:     d.contractName,
		DeployerAddress:  deployer.Address,
		ContractAddress:  contractAddress,
		TxHash:           deployment.TxHash(),
		Balance:          balance,
		FormattedBalance: formatted,
		Symbol:           d.symbol,
	}
	if deployment.Confirmed() {
		result.BlockNumber = deployment.Receipt().BlockNumber
	}
	return result, nil
}

func (d *Deployer) primarySigner(ctx context.Context) (*signer.Signer, error) {
	signers, err := d.signers.Signers(ctx)
	if err != nil {
		return nil, err
	}
	if len(signers) == 0 {
		return nil, clierrors.NewEnvironmentError(nil, "no signer available")
	}
	return signers[0], nil
}
