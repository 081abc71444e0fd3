// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"path/filepath"

	"github.com/aia-labs/marketplace-cli/pkg/artifacts"
	"github.com/aia-labs/marketplace-cli/pkg/config"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/evm"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/aia-labs/marketplace-cli/pkg/signer"
	"github.com/aia-labs/marketplace-cli/pkg/utils"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Marketplace struct {
	Log     logging.Logger
	baseDir string
	Conf    *config.Config
	Fs      afero.Fs
	// nil means evm.Connect
	Connector evm.Connector
}

func New() *Marketplace {
	return &Marketplace{}
}

func (app *Marketplace) Setup(baseDir string, log logging.Logger, conf *config.Config, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Fs = fs
}

func (app *Marketplace) GetBaseDir() string {
	return app.baseDir
}

func (app *Marketplace) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Marketplace) GetDeploymentsPath() string {
	return filepath.Join(app.baseDir, constants.DeploymentsFileName)
}

// GetArtifactsDir is the compilation output directory, relative paths being
// taken from the working directory
func (app *Marketplace) GetArtifactsDir() string {
	return utils.ExpandHome(app.Conf.ArtifactsDir())
}

func (app *Marketplace) ArtifactRegistry() *artifacts.Registry {
	return artifacts.NewRegistry(app.Fs, app.GetArtifactsDir())
}

// SelectedNetwork is the network commands operate on
func (app *Marketplace) SelectedNetwork() (models.Network, error) {
	network, err := app.Conf.SelectedNetwork()
	if err != nil {
		return models.Network{}, err
	}
	app.Log.Info("selected network",
		zap.String("network", network.Name),
		zap.String("url", network.Endpoint()),
		zap.Int("accounts", len(network.Accounts)),
	)
	return network, nil
}

func (app *Marketplace) SignerProvider(network models.Network) *signer.Provider {
	return signer.NewProvider(network)
}

// Connect connects to [network] on first use
func (app *Marketplace) Connect(network models.Network) *evm.LazyChain {
	return evm.NewLazyChain(network, func(ctx context.Context, network models.Network) (*evm.Chain, error) {
		app.Log.Info("connecting", zap.String("url", network.Endpoint()))
		if app.Connector != nil {
			return app.Connector(ctx, network)
		}
		return evm.Connect(ctx, network)
	})
}
