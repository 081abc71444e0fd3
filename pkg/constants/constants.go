// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	BaseDirName = ".marketplace-cli"
	LogDir      = "logs"
	LogName     = "marketplace"

	DeploymentsFileName = "deployments.json"

	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	// logging
	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	DefaultLogLevel = "OFF"

	// contract
	MarketplaceContractName = "NFTMarketplace"

	// artifacts
	DefaultArtifactsDir = "artifacts"
	ArtifactSuffix      = ".json"
	DebugArtifactSuffix = ".dbg.json"
	BuildInfoDir        = "build-info"
	HardhatArtifactFmt  = "hh-sol-artifact-1"

	// networks
	SimulatedNetworkName = "simulated"
	SimulatedScheme      = "simulated://"
	SimulatedChainID     = 1337
	NativeTokenSymbol    = "AIA"
	NativeTokenDecimals  = 18
	// whole tokens prefunded to each account of the simulated network
	SimulatedAccountFunds = 10_000

	DefaultConfirmations       = 1
	DefaultConfirmationTimeout = 2 * time.Minute
	DefaultPollInterval        = 1 * time.Second
	APIRequestTimeout          = 30 * time.Second

	// well known development key, first account of a default local hardhat/anvil node
	DevPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

// config keys
const (
	ConfigFileName            = "marketplace"
	EnvPrefix                 = "MARKETPLACE"
	ConfigDefaultNetworkKey   = "defaultNetwork"
	ConfigNetworkKey          = "network"
	ConfigNetworksKey         = "networks"
	ConfigArtifactsKey        = "paths.artifacts"
	ConfigPrivateKeyKey       = "private_key"
	ConfigRPCURLKey           = "rpc_url"
	ConfigNetworkURL          = "url"
	ConfigNetworkChainID      = "chainId"
	ConfigNetworkAccounts     = "accounts"
	ConfigNetworkSymbol       = "symbol"
	ConfigNetworkConfirms     = "confirmations"
	ConfigNetworkConfTimeout  = "confirmationTimeout"
	ConfigNetworkReqTimeout   = "requestTimeout"
	ConfigNetworkPollInterval = "pollInterval"
	ConfigNetworkGas          = "gas"
)
