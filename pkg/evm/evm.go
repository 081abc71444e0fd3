// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/aia-labs/marketplace-cli/pkg/artifacts"
	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/aia-labs/marketplace-cli/pkg/signer"
	"github.com/aia-labs/marketplace-cli/pkg/utils"
	ethereum "github.com/ava-labs/libevm"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/ethclient"
)

// Backend is the subset of an ethclient used to deploy contracts and
// follow their confirmation
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	Close()
}

// miner is implemented by backends that produce blocks on demand
type miner interface {
	Commit()
}

// used to mock the connection function
var ethclientDialContext = func(ctx context.Context, rawurl string) (Backend, error) {
	return ethclient.DialContext(ctx, rawurl)
}

// indicates if the given rpc url has schema or not
func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else {
		return strings.Contains(rpcURL, "://") && parsedURL.Scheme != "", nil
	}
}

// Chain deploys contracts into a network and follows their confirmation.
// Calls are not retried: any failure is returned to the caller.
type Chain struct {
	backend Backend
	network models.Network
	chainID *big.Int
}

// Connect opens a connection to [network]. Simulated networks are created in
// process, with the network accounts prefunded.
func Connect(ctx context.Context, network models.Network) (*Chain, error) {
	network = network.WithDefaults()
	var backend Backend
	if network.Simulated() {
		addrs, err := signer.NewProvider(network).Addresses(ctx)
		if err != nil {
			return nil, err
		}
		backend = NewSimulatedBackend(addrs, utils.ApplyDefaultDenomination(constants.SimulatedAccountFunds))
	} else {
		hasScheme, err := HasScheme(network.RPCURL)
		if err != nil {
			return nil, clierrors.NewEnvironmentError(err, "invalid url %q for network %q", network.RPCURL, network.Name)
		}
		if !hasScheme {
			return nil, clierrors.NewEnvironmentError(
				nil,
				"url %q for network %q has no scheme, use one of http://, https://, ws:// or wss://",
				network.RPCURL,
				network.Name,
			)
		}
		dialCtx, cancel := utils.GetTimedContext(ctx, network.RequestTimeout)
		defer cancel()
		backend, err = ethclientDialContext(dialCtx, network.RPCURL)
		if err != nil {
			return nil, &clierrors.NetworkError{Op: "failure connecting", URL: network.RPCURL, Err: err}
		}
	}
	chain, err := NewChain(ctx, backend, network)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return chain, nil
}

// NewChain wraps an already connected [backend], checking it serves the
// chain id expected by [network]
func NewChain(ctx context.Context, backend Backend, network models.Network) (*Chain, error) {
	network = network.WithDefaults()
	c := &Chain{
		backend: backend,
		network: network,
	}
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()
	chainID, err := backend.ChainID(reqCtx)
	if err != nil {
		return nil, c.networkError("failure getting chain id", err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		return nil, clierrors.NewEnvironmentError(
			nil,
			"network %q is configured with chain id %d but %s serves chain id %s",
			network.Name,
			network.ChainID,
			network.Endpoint(),
			chainID,
		)
	}
	c.chainID = chainID
	return c, nil
}

// closes underlying connection
func (c *Chain) Close() {
	c.backend.Close()
}

func (c *Chain) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *Chain) Network() models.Network {
	return c.network
}

// Deploy submits a transaction creating a new instance of the [factory]
// contract, signed by [s]. It does not wait for the transaction to be mined.
func (c *Chain) Deploy(
	ctx context.Context,
	s *signer.Signer,
	factory *artifacts.ContractFactory,
	args ...interface{},
) (*Deployment, error) {
	if _, err := factory.DeployData(args...); err != nil {
		return nil, err
	}
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()
	opts, err := s.TransactOpts(reqCtx, c.chainID)
	if err != nil {
		return nil, err
	}
	opts.GasLimit = c.network.GasLimit
	_, tx, _, err := bind.DeployContract(opts, factory.ABI, factory.Bytecode, c.backend, args...)
	if err != nil {
		return nil, ClassifySendError(err, s.Address, c.network.Endpoint())
	}
	return NewDeployment(tx, s.Address, factory.ContractName), nil
}

// WaitForDeployment waits for [d] to be mined, to reach the network
// confirmations and to have code at the contract address. Returns the
// contract address.
func (c *Chain) WaitForDeployment(ctx context.Context, d *Deployment) (common.Address, error) {
	waitCtx, cancel := utils.GetTimedContext(ctx, c.network.ConfirmationTimeout)
	defer cancel()
	receipt, err := c.waitMined(waitCtx, d.Tx)
	if err != nil {
		return common.Address{}, c.waitError(ctx, waitCtx, d, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, &clierrors.TransactionRevertedError{
			TxHash: d.Tx.Hash().Hex(),
			Reason: fmt.Sprintf("deployment of %s failed at block %s", d.ContractName, receipt.BlockNumber),
		}
	}
	if err := c.waitConfirmations(waitCtx, receipt); err != nil {
		return common.Address{}, c.waitError(ctx, waitCtx, d, err)
	}
	reqCtx, reqCancel := c.requestContext(ctx)
	defer reqCancel()
	code, err := c.backend.CodeAt(reqCtx, receipt.ContractAddress, nil)
	if err != nil {
		return common.Address{}, c.networkError("failure obtaining contract code", err)
	}
	if len(code) == 0 {
		return common.Address{}, &clierrors.TransactionRevertedError{
			TxHash: d.Tx.Hash().Hex(),
			Reason: fmt.Sprintf("%s: no contract code at %s", bind.ErrNoCodeAfterDeploy, receipt.ContractAddress.Hex()),
		}
	}
	d.confirm(receipt)
	return d.Address()
}

// Balance returns the native token balance of [address], in base units
func (c *Chain) Balance(ctx context.Context, address common.Address) (*big.Int, error) {
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()
	balance, err := c.backend.BalanceAt(reqCtx, address, nil)
	if err != nil {
		return nil, c.networkError(fmt.Sprintf("failure obtaining balance for %s", address.Hex()), err)
	}
	return balance, nil
}

// polls for the receipt of [tx]. Not found receipts are polled again, any
// other failure is returned.
func (c *Chain) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ticker := time.NewTicker(c.network.PollInterval)
	defer ticker.Stop()
	for {
		reqCtx, cancel := c.requestContext(ctx)
		receipt, err := c.backend.TransactionReceipt(reqCtx, tx.Hash())
		cancel()
		switch {
		case err == nil && receipt != nil:
			return receipt, nil
		case err != nil && !errors.Is(err, ethereum.NotFound):
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, c.networkError(fmt.Sprintf("failure obtaining receipt for tx %s", tx.Hash().Hex()), err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// waits until the block including [receipt] is followed by enough blocks
// to count the network confirmations
func (c *Chain) waitConfirmations(ctx context.Context, receipt *types.Receipt) error {
	target := receipt.BlockNumber.Uint64() + c.network.Confirmations - 1
	ticker := time.NewTicker(c.network.PollInterval)
	defer ticker.Stop()
	for {
		reqCtx, cancel := c.requestContext(ctx)
		head, err := c.backend.BlockNumber(reqCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return c.networkError("failure obtaining block number", err)
		}
		if head >= target {
			return nil
		}
		if m, ok := c.backend.(miner); ok {
			m.Commit()
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Chain) waitError(parent context.Context, waitCtx context.Context, d *Deployment, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil && waitCtx.Err() != nil {
		return &clierrors.ConfirmationTimeoutError{
			TxHash:        d.Tx.Hash().Hex(),
			Confirmations: c.network.Confirmations,
			Err:           fmt.Errorf("waited %s", c.network.ConfirmationTimeout),
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("waiting for deployment of %s: %w", d.ContractName, err)
	}
	return err
}

func (c *Chain) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return utils.GetTimedContext(ctx, c.network.RequestTimeout)
}

func (c *Chain) networkError(op string, err error) error {
	return &clierrors.NetworkError{Op: op, URL: c.network.Endpoint(), Err: err}
}
