// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"math/big"
	"sync"

	"github.com/aia-labs/marketplace-cli/pkg/artifacts"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/aia-labs/marketplace-cli/pkg/signer"
	"github.com/ava-labs/libevm/common"
)

type Connector func(ctx context.Context, network models.Network) (*Chain, error)

// LazyChain connects to its network the first time it is used, so no
// connection is attempted if the work fails before reaching the chain
type LazyChain struct {
	network models.Network
	connect Connector

	once  sync.Once
	chain *Chain
	err   error
}

func NewLazyChain(network models.Network, connect Connector) *LazyChain {
	if connect == nil {
		connect = Connect
	}
	return &LazyChain{
		network: network,
		connect: connect,
	}
}

// Chain returns the connected chain. A failed connection is not retried.
func (l *LazyChain) Chain(ctx context.Context) (*Chain, error) {
	l.once.Do(func() {
		l.chain, l.err = l.connect(ctx, l.network)
	})
	return l.chain, l.err
}

func (l *LazyChain) Deploy(
	ctx context.Context,
	s *signer.Signer,
	factory *artifacts.ContractFactory,
	args ...interface{},
) (*Deployment, error) {
	chain, err := l.Chain(ctx)
	if err != nil {
		return nil, err
	}
	return chain.Deploy(ctx, s, factory, args...)
}

func (l *LazyChain) WaitForDeployment(ctx context.Context, d *Deployment) (common.Address, error) {
	chain, err := l.Chain(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return chain.WaitForDeployment(ctx, d)
}

func (l *LazyChain) Balance(ctx context.Context, address common.Address) (*big.Int, error) {
	chain, err := l.Chain(ctx)
	if err != nil {
		return nil, err
	}
	return chain.Balance(ctx, address)
}

// ChainID is the id served by the connected node
func (l *LazyChain) ChainID(ctx context.Context) (*big.Int, error) {
	chain, err := l.Chain(ctx)
	if err != nil {
		return nil, err
	}
	return chain.ChainID(), nil
}

// Close closes the connection, if any was made
func (l *LazyChain) Close() {
	if l.chain != nil {
		l.chain.Close()
	}
}
