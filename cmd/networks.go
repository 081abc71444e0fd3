// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aia-labs/marketplace-cli/pkg/cobrautils"
	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	tableOutput = "table"
	yamlOutput  = "yaml"
	jsonOutput  = "json"
)

var outputFormat string

// marketplace networks
func newNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the configured networks",
		Long: `The networks command lists the networks available to deploy into. The
simulated network is always available. Private keys are never shown.`,
		RunE: listNetworks,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVarP(&outputFormat, "output", "o", tableOutput, "output format, one of table, yaml or json")
	return cmd
}

func listNetworks(cmd *cobra.Command, _ []string) error {
	networks, err := app.Conf.Networks()
	if err != nil {
		return err
	}
	selected := strings.ToLower(app.Conf.SelectedNetworkName())
	switch outputFormat {
	case tableOutput:
		rows := []table.Row{}
		for _, network := range networks {
			name := network.Name
			if name == selected {
				name += " *"
			}
			rows = append(rows, table.Row{
				name,
				network.Endpoint(),
				network.ChainID,
				network.Symbol,
				len(network.Accounts),
				network.Confirmations,
			})
		}
		ux.Logger.PrintTable(
			"Networks",
			table.Row{"Name", "URL", "Chain ID", "Symbol", "Accounts", "Confirmations"},
			rows,
		)
	case yamlOutput:
		bs, err := yaml.Marshal(networks)
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("%s", strings.TrimSuffix(string(bs), "\n"))
	case jsonOutput:
		bs, err := json.MarshalIndent(networks, "", "  ")
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("%s", string(bs))
	default:
		return cobrautils.NewUsageError(cmd, fmt.Errorf("invalid output format %q", outputFormat))
	}
	return nil
}
