// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import (
	"errors"
	"fmt"
)

var (
	ErrEnvironment         = errors.New("environment error")
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrNetwork             = errors.New("network error")
	ErrTransactionRejected = errors.New("transaction rejected")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrConfirmationTimeout = errors.New("confirmation timeout")
)

// EnvironmentError is returned when the execution environment is misconfigured,
// eg. no signer is available for the selected network
type EnvironmentError struct {
	Msg string
	Err error
}

func NewEnvironmentError(err error, format string, args ...interface{}) *EnvironmentError {
	return &EnvironmentError{Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *EnvironmentError) Error() string {
	return describe(ErrEnvironment, e.Msg, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

func (*EnvironmentError) Is(target error) bool { return target == ErrEnvironment }

// ArtifactNotFoundError is returned when a contract name can not be resolved
// from the build artifacts
type ArtifactNotFoundError struct {
	ContractName string
	Dir          string
	Err          error
}

func (e *ArtifactNotFoundError) Error() string {
	msg := fmt.Sprintf("no artifact for contract %q under %s", e.ContractName, e.Dir)
	return describe(ErrArtifactNotFound, msg, e.Err)
}

func (e *ArtifactNotFoundError) Unwrap() error { return e.Err }

func (*ArtifactNotFoundError) Is(target error) bool { return target == ErrArtifactNotFound }

// NetworkError is returned on RPC or connectivity failures
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	msg := e.Op
	if e.URL != "" {
		msg = fmt.Sprintf("%s on %s", e.Op, e.URL)
	}
	return describe(ErrNetwork, msg, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (*NetworkError) Is(target error) bool { return target == ErrNetwork }

// TransactionRejectedError is returned when the node refuses a transaction at
// broadcast time (insufficient funds, nonce conflicts, gas issues)
type TransactionRejectedError struct {
	From string
	Err  error
}

func (e *TransactionRejectedError) Error() string {
	return describe(ErrTransactionRejected, fmt.Sprintf("sender %s", e.From), e.Err)
}

func (e *TransactionRejectedError) Unwrap() error { return e.Err }

func (*TransactionRejectedError) Is(target error) bool { return target == ErrTransactionRejected }

// TransactionRevertedError is returned when a mined transaction failed
type TransactionRevertedError struct {
	TxHash string
	Reason string
}

func (e *TransactionRevertedError) Error() string {
	return describe(ErrTransactionReverted, fmt.Sprintf("tx %s: %s", e.TxHash, e.Reason), nil)
}

func (*TransactionRevertedError) Is(target error) bool { return target == ErrTransactionReverted }

// ConfirmationTimeoutError is returned when a transaction did not reach the
// expected number of confirmations in time
type ConfirmationTimeoutError struct {
	TxHash        string
	Confirmations uint64
	Err           error
}

func (e *ConfirmationTimeoutError) Error() string {
	msg := fmt.Sprintf("tx %s did not reach %d confirmation(s)", e.TxHash, e.Confirmations)
	return describe(ErrConfirmationTimeout, msg, e.Err)
}

func (e *ConfirmationTimeoutError) Unwrap() error { return e.Err }

func (*ConfirmationTimeoutError) Is(target error) bool { return target == ErrConfirmationTimeout }

func describe(kind error, msg string, cause error) string {
	if cause == nil {
		return fmt.Sprintf("%s: %s", kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", kind, msg, cause)
}
