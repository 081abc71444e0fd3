// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	// creation code copying a 10 bytes runtime that returns 42 for any call
	MarketplaceBytecode = "0x600a600c600039600a6000f3602a60005260206000f3"
	// runtime code of the contract above
	MarketplaceRuntime = "0x602a60005260206000f3"
	// creation code that reverts
	RevertingBytecode = "0x60006000fd"
	// creation code that stops without returning a runtime
	EmptyRuntimeBytecode = "0x00"

	MarketplaceABI = `[
  {"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
  {"inputs":[{"internalType":"address","name":"nftContract","type":"address"},{"internalType":"uint256","name":"tokenId","type":"uint256"},{"internalType":"uint256","name":"price","type":"uint256"}],"name":"listItem","outputs":[],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[{"internalType":"uint256","name":"itemId","type":"uint256"}],"name":"buyItem","outputs":[],"stateMutability":"payable","type":"function"},
  {"inputs":[],"name":"listingFee","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`
)

// ArtifactFile describes an artifact file to be written for a test
type ArtifactFile struct {
	SourceName     string
	ContractName   string
	ABI            string
	Bytecode       string
	LinkReferences map[string]map[string][]map[string]int
}

// WriteArtifact writes a hardhat formatted artifact under [root] on [fs],
// together with its debug file, and returns its path
func WriteArtifact(t require.TestingT, fs afero.Fs, root string, artifact ArtifactFile) string {
	if artifact.ABI == "" {
		artifact.ABI = "[]"
	}
	if artifact.LinkReferences == nil {
		artifact.LinkReferences = map[string]map[string][]map[string]int{}
	}
	content := map[string]interface{}{
		"_format":                "hh-sol-artifact-1",
		"contractName":           artifact.ContractName,
		"sourceName":             artifact.SourceName,
		"abi":                    json.RawMessage(artifact.ABI),
		"bytecode":               artifact.Bytecode,
		"deployedBytecode":       "0x",
		"linkReferences":         artifact.LinkReferences,
		"deployedLinkReferences": map[string]interface{}{},
	}
	bs, err := json.MarshalIndent(content, "", "  ")
	require.NoError(t, err)
	dir := filepath.Join(root, filepath.FromSlash(artifact.SourceName))
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, artifact.ContractName+".json")
	require.NoError(t, afero.WriteFile(fs, path, bs, 0o644))
	debug := []byte(`{"_format":"hh-sol-dbg-1","buildInfo":"../../build-info/abc.json"}`)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, artifact.ContractName+".dbg.json"), debug, 0o644))
	return path
}

// WriteMarketplaceArtifact writes the NFTMarketplace artifact with the given creation code
func WriteMarketplaceArtifact(t require.TestingT, fs afero.Fs, root string, bytecode string) string {
	return WriteArtifact(t, fs, root, ArtifactFile{
		SourceName:   "contracts/NFTMarketplace.sol",
		ContractName: "NFTMarketplace",
		ABI:          MarketplaceABI,
		Bytecode:     bytecode,
	})
}
