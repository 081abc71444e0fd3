// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"errors"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/crypto"
)

var ErrDeploymentPending = errors.New("deployment is not confirmed yet")

// Deployment tracks a contract creation transaction until it is confirmed
type Deployment struct {
	Tx           *types.Transaction
	From         common.Address
	ContractName string

	expectedAddress common.Address
	receipt         *types.Receipt
}

func NewDeployment(tx *types.Transaction, from common.Address, contractName string) *Deployment {
	return &Deployment{
		Tx:              tx,
		From:            from,
		ContractName:    contractName,
		expectedAddress: crypto.CreateAddress(from, tx.Nonce()),
	}
}

func (d *Deployment) TxHash() common.Hash {
	return d.Tx.Hash()
}

// ExpectedAddress is the address the contract will have once mined
func (d *Deployment) ExpectedAddress() common.Address {
	return d.expectedAddress
}

func (d *Deployment) Confirmed() bool {
	return d.receipt != nil
}

func (d *Deployment) Receipt() *types.Receipt {
	return d.receipt
}

// Address returns the contract address. It is only available after the
// deployment is confirmed.
func (d *Deployment) Address() (common.Address, error) {
	if d.receipt == nil {
		return common.Address{}, ErrDeploymentPending
	}
	return d.receipt.ContractAddress, nil
}

func (d *Deployment) confirm(receipt *types.Receipt) {
	d.receipt = receipt
}
