// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package main

import (
	"os"

	"github.com/aia-labs/marketplace-cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
