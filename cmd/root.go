// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aia-labs/marketplace-cli/pkg/application"
	"github.com/aia-labs/marketplace-cli/pkg/cobrautils"
	"github.com/aia-labs/marketplace-cli/pkg/config"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/evm"
	"github.com/aia-labs/marketplace-cli/pkg/utils"
	"github.com/aia-labs/marketplace-cli/pkg/ux"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.Marketplace

	logLevel   string
	configFile string
	logFactory logging.Factory

	// used to mock the chain connection
	connectChain evm.Connector

	Version = ""
)

// NewRootCmd creates the marketplace command. Run with no subcommand it
// deploys the marketplace contract.
func NewRootCmd() *cobra.Command {
	app = application.New()
	rootCmd := &cobra.Command{
		Use: "marketplace",
		Long: `Marketplace CLI deploys the NFTMarketplace contract into an EVM network
and manages the accounts and networks used to do so.

Running marketplace with no subcommand deploys the contract into the
selected network, the in process simulated network by default.`,
		PersistentPreRunE: createApp,
		PersistentPostRun: closeLogs,
		RunE:              deployContract,
		Args:              cobrautils.ExactArgs(0),
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./marketplace.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.DefaultLogLevel, "log level for the application")
	rootCmd.PersistentFlags().String("network", "", "network to operate on (default is the config defaultNetwork, or simulated)")
	rootCmd.PersistentFlags().String("artifacts", "", "directory holding the compiled contract artifacts (default is ./artifacts)")

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newAccountsCmd())
	rootCmd.AddCommand(newNetworksCmd())
	rootCmd.AddCommand(newDeploymentsCmd())

	cobrautils.ConfigureRootCmd(rootCmd)
	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	// report errors to the user even if logging can not be set up
	ux.NewUserLog(logging.NoLog{}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cf := config.New()
	if err := cf.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cf.SetConfig(log, configFile); err != nil {
		return err
	}
	app.Setup(baseDir, log, cf, afero.NewOsFs())
	app.Connector = connectChain
	log.Info("command",
		zap.String("name", cmd.CommandPath()),
		zap.Strings("args", os.Args[1:]),
		zap.String("config-file", cf.GetConfigPath()),
		zap.String("log-dir", app.GetLogDir()),
	)
	return nil
}

func setupEnv() (string, error) {
	baseDir := utils.UserHomePath(constants.BaseDirName)
	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, perms.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (logging.Logger, error) {
	var err error

	logConfig := logging.Config{}
	logConfig.LogLevel = logging.Info
	logConfig.DisplayLevel, err = logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logConfig.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logConfig.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	logConfig.LogFormat = logging.Colors
	logConfig.MaxSize = constants.MaxLogFileSize
	logConfig.MaxFiles = constants.MaxNumOfLogFiles
	logConfig.MaxAge = constants.RetainOldFiles

	logFactory = logging.NewFactory(logConfig)
	log, err := logFactory.Make(constants.LogName)
	if err != nil {
		logFactory.Close()
		logFactory = nil
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	return log, nil
}

func closeLogs(*cobra.Command, []string) {
	if logFactory != nil {
		logFactory.Close()
		logFactory = nil
	}
}

// Execute runs the marketplace command with the process arguments, and
// returns the exit code. This is called by main.main().
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	code := cobrautils.HandleErrors(err)
	closeLogs(rootCmd, nil)
	return code
}
