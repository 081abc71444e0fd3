// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match
	_ = v.BindEnv(constants.ConfigArtifactsKey, constants.EnvPrefix+"_ARTIFACTS")
	v.SetDefault(constants.ConfigArtifactsKey, constants.DefaultArtifactsDir)
	return &Config{v: v}
}

// SetConfig reads the configuration file [s]. If [s] is empty, a file named
// marketplace.{yaml,json,toml} is looked up on the working directory, and
// its absence is not an error.
func (c *Config) SetConfig(log logging.Logger, s string) error {
	if s != "" {
		c.v.AddConfigPath(filepath.Dir(s))
		c.v.SetConfigFile(s)
		if err := c.v.ReadInConfig(); err != nil {
			return clierrors.NewEnvironmentError(err, "failed reading config file %s", s)
		}
		log.Info("Using config file", zap.String("config-file", s))
		return nil
	}
	c.v.SetConfigName(constants.ConfigFileName)
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Info("No config file found")
			return nil
		}
		return clierrors.NewEnvironmentError(err, "failed reading config file %s", c.v.ConfigFileUsed())
	}
	log.Info("Using config file", zap.String("config-file", c.v.ConfigFileUsed()))
	return nil
}

// BindFlags makes command line flags take precedence over file and env values
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	if f := flags.Lookup("network"); f != nil {
		if err := c.v.BindPFlag(constants.ConfigNetworkKey, f); err != nil {
			return err
		}
	}
	if f := flags.Lookup("artifacts"); f != nil {
		if err := c.v.BindPFlag(constants.ConfigArtifactsKey, f); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// SetConfigValue sets the value of a configuration key, without persisting it.
func (c *Config) SetConfigValue(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) ArtifactsDir() string {
	return c.v.GetString(constants.ConfigArtifactsKey)
}

// NetworkNames returns the sorted names of the configured networks. The
// simulated network is always available.
func (c *Config) NetworkNames() []string {
	names := []string{}
	seen := map[string]bool{}
	for name := range c.v.GetStringMap(constants.ConfigNetworksKey) {
		names = append(names, name)
		seen[name] = true
	}
	if !seen[constants.SimulatedNetworkName] {
		names = append(names, constants.SimulatedNetworkName)
	}
	sort.Strings(names)
	return names
}

// SelectedNetworkName is, in order of precedence, the --network flag,
// MARKETPLACE_NETWORK, the network config value, defaultNetwork, or the
// simulated network
func (c *Config) SelectedNetworkName() string {
	if name := c.v.GetString(constants.ConfigNetworkKey); name != "" {
		return name
	}
	if name := c.v.GetString(constants.ConfigDefaultNetworkKey); name != "" {
		return name
	}
	return constants.SimulatedNetworkName
}

// Network loads the network [name] from configuration
func (c *Config) Network(name string) (models.Network, error) {
	// viper keys are case insensitive
	name = strings.ToLower(name)
	if !c.v.IsSet(networkKey(name)) {
		if name == constants.SimulatedNetworkName {
			return models.NewSimulatedNetwork(), nil
		}
		return models.Network{}, clierrors.NewEnvironmentError(
			nil,
			"network %q is not configured (available: %s)",
			name,
			strings.Join(c.NetworkNames(), ", "),
		)
	}
	network := models.Network{
		Name:                name,
		RPCURL:              c.v.GetString(networkKey(name, constants.ConfigNetworkURL)),
		ChainID:             c.v.GetUint64(networkKey(name, constants.ConfigNetworkChainID)),
		Accounts:            c.v.GetStringSlice(networkKey(name, constants.ConfigNetworkAccounts)),
		Symbol:              c.v.GetString(networkKey(name, constants.ConfigNetworkSymbol)),
		Confirmations:       c.v.GetUint64(networkKey(name, constants.ConfigNetworkConfirms)),
		ConfirmationTimeout: c.v.GetDuration(networkKey(name, constants.ConfigNetworkConfTimeout)),
		RequestTimeout:      c.v.GetDuration(networkKey(name, constants.ConfigNetworkReqTimeout)),
		PollInterval:        c.v.GetDuration(networkKey(name, constants.ConfigNetworkPollInterval)),
		GasLimit:            c.v.GetUint64(networkKey(name, constants.ConfigNetworkGas)),
	}
	if network.Simulated() && name != constants.SimulatedNetworkName && network.RPCURL == "" {
		return models.Network{}, clierrors.NewEnvironmentError(nil, "network %q has no url", name)
	}
	return network.WithDefaults(), nil
}

// SelectedNetwork loads the network to operate on, applying the
// MARKETPLACE_RPC_URL and MARKETPLACE_PRIVATE_KEY overrides
func (c *Config) SelectedNetwork() (models.Network, error) {
	name := c.SelectedNetworkName()
	network, err := c.Network(name)
	if err != nil {
		return models.Network{}, err
	}
	if url := c.v.GetString(constants.ConfigRPCURLKey); url != "" {
		if network.Simulated() && !strings.HasPrefix(url, constants.SimulatedScheme) {
			// the simulated chain id says nothing about the node behind [url]
			network.ChainID = 0
		}
		network.RPCURL = url
	}
	if privateKey := c.v.GetString(constants.ConfigPrivateKeyKey); privateKey != "" {
		network.Accounts = append([]string{privateKey}, network.Accounts...)
	}
	return network.WithDefaults(), nil
}

// Networks loads all configured networks, sorted by name
func (c *Config) Networks() ([]models.Network, error) {
	networks := []models.Network{}
	for _, name := range c.NetworkNames() {
		network, err := c.Network(name)
		if err != nil {
			return nil, fmt.Errorf("failure loading network %s: %w", name, err)
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func networkKey(name string, fields ...string) string {
	return strings.Join(append([]string{constants.ConfigNetworksKey, name}, fields...), ".")
}
