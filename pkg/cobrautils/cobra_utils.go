// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"errors"
	"fmt"

	"github.com/aia-labs/marketplace-cli/pkg/ux"

	"github.com/spf13/cobra"
)

type UsageError struct {
	cmd *cobra.Command
	err error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("Usage error: %s", e.err)
}

func (e UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(cmd *cobra.Command, err error) UsageError {
	return UsageError{
		cmd: cmd,
		err: err,
	}
}

// FailureError is a command failure reported to the user as "<Msg>: <Err>"
type FailureError struct {
	Msg string
	Err error
}

func NewFailureError(msg string, err error) *FailureError {
	return &FailureError{Msg: msg, Err: err}
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Msg, e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := cobra.ExactArgs(n)(cmd, args)
		if err != nil {
			_ = cmd.Help()
			err = NewUsageError(cmd, err)
		}
		return err
	}
}

// HandleErrors reports [err] to the user and returns the process exit code
func HandleErrors(err error) int {
	if err == nil {
		return 0
	}
	var usageErr UsageError
	var failureErr *FailureError
	switch {
	case errors.As(err, &usageErr):
		usageErr.cmd.PrintErrln(usageErr.cmd.UsageString())
		usageErr.cmd.PrintErrln(usageErr)
	case errors.As(err, &failureErr):
		ux.Logger.ErrorToUser("%s", failureErr)
	default:
		ux.Logger.ErrorToUser("Error: %s", err)
	}
	return 1
}

func ConfigureRootCmd(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})
}
