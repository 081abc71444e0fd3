// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DeploymentRecord describes a contract deployed into a persistent network
type DeploymentRecord struct {
	Network      string    `json:"network" yaml:"network"`
	ChainID      uint64    `json:"chainId" yaml:"chainId"`
	ContractName string    `json:"contractName" yaml:"contractName"`
	Address      string    `json:"address" yaml:"address"`
	TxHash       string    `json:"txHash" yaml:"txHash"`
	BlockNumber  uint64    `json:"blockNumber" yaml:"blockNumber"`
	Deployer     string    `json:"deployer" yaml:"deployer"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
}

// AddDeploymentRecord appends [record] to the deployments file. Failures are
// non-critical and only logged, as the deployment itself already happened.
func (app *Marketplace) AddDeploymentRecord(record DeploymentRecord) {
	records, err := app.ReadDeploymentRecords()
	if err != nil {
		app.Log.Warn("failed to read the deployments file! This is non-critical but is logged", zap.Error(err))
		return
	}
	records = append(records, record)
	bs, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		app.Log.Warn("failed to marshal deployments! This is non-critical but is logged", zap.Error(err))
		return
	}
	if err := app.Fs.MkdirAll(app.GetBaseDir(), constants.DefaultPerms755); err != nil {
		app.Log.Warn("failed to create the base dir! This is non-critical but is logged", zap.Error(err))
		return
	}
	if err := afero.WriteFile(app.Fs, app.GetDeploymentsPath(), bs, constants.WriteReadReadPerms); err != nil {
		app.Log.Warn("failed to write the deployments file! This is non-critical but is logged", zap.Error(err))
	}
}

// ReadDeploymentRecords returns the recorded deployments, oldest first
func (app *Marketplace) ReadDeploymentRecords() ([]DeploymentRecord, error) {
	records := []DeploymentRecord{}
	bs, err := afero.ReadFile(app.Fs, app.GetDeploymentsPath())
	if errors.Is(err, os.ErrNotExist) {
		return records, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bs, &records); err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}
