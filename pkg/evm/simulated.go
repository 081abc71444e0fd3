// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"math/big"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core"
	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/ethclient/simulated"
)

// SimulatedBackend is an in process chain that mines a block for every
// accepted transaction
type SimulatedBackend struct {
	simulated.Client
	backend *simulated.Backend
}

// NewSimulatedBackend creates a chain where each of [funded] holds [balance]
func NewSimulatedBackend(funded []common.Address, balance *big.Int) *SimulatedBackend {
	alloc := make(core.GenesisAlloc, len(funded))
	for _, addr := range funded {
		alloc[addr] = core.GenesisAccount{Balance: new(big.Int).Set(balance)}
	}
	backend := simulated.NewBackend(alloc)
	return &SimulatedBackend{
		Client:  backend.Client(),
		backend: backend,
	}
}

func (s *SimulatedBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := s.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	s.backend.Commit()
	return nil
}

// Commit mines a new block
func (s *SimulatedBackend) Commit() {
	s.backend.Commit()
}

func (s *SimulatedBackend) Close() {
	_ = s.backend.Close()
}
