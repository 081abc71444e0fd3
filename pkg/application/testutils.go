// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"testing"

	"github.com/aia-labs/marketplace-cli/pkg/config"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"
)

func NewTestApp(t *testing.T) *Marketplace {
	tempDir := t.TempDir()
	return &Marketplace{
		baseDir: tempDir,
		Log:     logging.NoLog{},
		Conf:    config.New(),
		Fs:      afero.NewMemMapFs(),
	}
}
