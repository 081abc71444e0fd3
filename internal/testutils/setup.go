// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(logging.NoLog{}, io.Discard, io.Discard)
	return require.New(t)
}

// CaptureUserLog returns a user log writing into buffers instead of the terminal
func CaptureUserLog() (*ux.UserLog, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return ux.New(logging.NoLog{}, out, errOut), out, errOut
}
