// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"

	"github.com/aia-labs/marketplace-cli/pkg/cobrautils"
	"github.com/aia-labs/marketplace-cli/pkg/utils"
	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// marketplace accounts
func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts of the selected network",
		Long: `The accounts command lists the addresses able to sign for the selected
network, in the order they are used, together with their balances. The first
one is the deployer.`,
		RunE: listAccounts,
		Args: cobrautils.ExactArgs(0),
	}
}

func listAccounts(cmd *cobra.Command, _ []string) error {
	network, err := app.SelectedNetwork()
	if err != nil {
		return err
	}
	signers, err := app.SignerProvider(network).Signers(cmd.Context())
	if err != nil {
		return err
	}
	chain := app.Connect(network)
	defer chain.Close()

	rows := []table.Row{}
	deployerFunded := false
	for i, s := range signers {
		balance, err := chain.Balance(cmd.Context(), s.Address)
		if err != nil {
			return err
		}
		if i == 0 {
			deployerFunded = balance.Sign() > 0
		}
		formatted := utils.FormatDefaultDenomination(balance)
		rows = append(rows, table.Row{i, s.Address.Hex(), fmt.Sprintf("%s %s", formatted, network.Symbol)})
	}
	ux.Logger.PrintTable(
		fmt.Sprintf("Accounts on %s", network.Name),
		table.Row{"#", "Address", "Balance"},
		rows,
	)
	if deployerFunded {
		ux.Logger.GreenCheckmarkToUser("Deployer %s can pay for the deployment", signers[0].Address.Hex())
	} else {
		ux.Logger.RedXToUser("Deployer %s has no %s to pay for the deployment", signers[0].Address.Hex(), network.Symbol)
	}
	return nil
}
