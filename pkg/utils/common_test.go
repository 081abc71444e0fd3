// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetTimedContext(t *testing.T) {
	ctx, cancel := GetTimedContext(context.Background(), 0)
	_, ok := ctx.Deadline()
	require.False(t, ok)
	cancel()
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	parent, parentCancel := context.WithCancel(context.Background())
	ctx, cancel = GetTimedContext(parent, time.Hour)
	defer cancel()
	parentCancel()
	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	ctx, cancel = GetTimedContext(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
