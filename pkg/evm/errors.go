// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/rpc"
)

// messages a node gives when refusing a transaction at broadcast time
var rejectionMessages = []string{
	"insufficient funds",
	"nonce too low",
	"nonce too high",
	"gas required exceeds allowance",
	"intrinsic gas too low",
	"execution reverted",
	"transaction underpriced",
	"replacement transaction underpriced",
	"already known",
	"exceeds block gas limit",
	"max fee per gas less than block base fee",
	"invalid sender",
}

var connectivityMessages = []string{
	"connection refused",
	"connection reset",
	"dial tcp",
	"no such host",
	"i/o timeout",
	"eof",
}

// ClassifySendError maps an error obtained while broadcasting a transaction
// from [from] into a network error when the node could not be reached, and
// into a rejection otherwise
func ClassifySendError(err error, from common.Address, endpoint string) error {
	if err == nil {
		return nil
	}
	if isConnectivityError(err) {
		return &clierrors.NetworkError{Op: "failure sending transaction", URL: endpoint, Err: err}
	}
	return &clierrors.TransactionRejectedError{From: from.Hex(), Err: err}
}

// IsRejection indicates if [err] carries a known transaction rejection message
func IsRejection(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range rejectionMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func isConnectivityError(err error) bool {
	// the node answered
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) || IsRejection(err) {
		return false
	}
	var netErr net.Error
	var urlErr *url.Error
	switch {
	case errors.As(err, &netErr), errors.As(err, &urlErr):
		return true
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return true
	case errors.Is(err, context.DeadlineExceeded):
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range connectivityMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
