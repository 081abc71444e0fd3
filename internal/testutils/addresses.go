// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/hex"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/crypto"
	"github.com/stretchr/testify/require"
)

// GeneratePrivateKeys returns [count] random hex encoded private keys, along
// with their addresses
func GeneratePrivateKeys(t require.TestingT, count int) ([]string, []common.Address) {
	keys := make([]string, count)
	addrs := make([]common.Address, count)
	for i := 0; i < count; i++ {
		pk, err := crypto.GenerateKey()
		require.NoError(t, err)
		keys[i] = hex.EncodeToString(crypto.FromECDSA(pk))
		addrs[i] = crypto.PubkeyToAddress(pk.PublicKey)
	}
	return keys, addrs
}
