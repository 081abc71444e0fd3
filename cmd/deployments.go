// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"time"

	"github.com/aia-labs/marketplace-cli/pkg/cobrautils"
	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// marketplace deployments
func newDeploymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deployments",
		Short: "List the contracts deployed into persistent networks",
		RunE:  listDeployments,
		Args:  cobrautils.ExactArgs(0),
	}
}

func listDeployments(*cobra.Command, []string) error {
	records, err := app.ReadDeploymentRecords()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		ux.Logger.PrintToUser("No deployments recorded")
		return nil
	}
	rows := []table.Row{}
	for _, r := range records {
		rows = append(rows, table.Row{
			r.Network,
			r.ChainID,
			r.ContractName,
			r.Address,
			r.TxHash,
			ux.ConvertToStringWithThousandSeparator(r.BlockNumber),
			r.Timestamp.Format(time.RFC3339),
		})
	}
	ux.Logger.PrintTable(
		"Deployments",
		table.Row{"Network", "Chain ID", "Contract", "Address", "Tx", "Block", "Date"},
		rows,
	)
	ux.Logger.GreenCheckmarkToUser("%d deployment(s) recorded in %s", len(records), app.GetDeploymentsPath())
	return nil
}
