// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"io"
	"strings"

	"github.com/aia-labs/marketplace-cli/internal/testutils"
	"github.com/aia-labs/marketplace-cli/pkg/cobrautils"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/aia-labs/marketplace-cli/pkg/evm"
	"github.com/aia-labs/marketplace-cli/pkg/models"
	"github.com/aia-labs/marketplace-cli/pkg/signer"
	"github.com/aia-labs/marketplace-cli/pkg/utils"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/crypto"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const unreachableConfig = `
networks:
  local:
    url: http://127.0.0.1:1
    chainId: 31337
    accounts:
      - "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
    requestTimeout: 5s
  aia-testnet:
    url: https://aia-dataseed1-testnet.aiachain.org
    chainId: 1320
    confirmations: 2
  aia-devnet:
    url: http://aia-devnet.test:8545
    accounts:
      - "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
    pollInterval: 10ms
    confirmationTimeout: 10s
`

// failingReceipts accepts transactions but can not report their receipts
type failingReceipts struct {
	*evm.SimulatedBackend
}

func (*failingReceipts) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, io.ErrUnexpectedEOF
}

// connects every network to an in process chain funding the development account
func inProcessConnector(wrap func(*evm.SimulatedBackend) evm.Backend) evm.Connector {
	return func(ctx context.Context, network models.Network) (*evm.Chain, error) {
		deployer, err := signer.PrivateKeyToAddress(constants.DevPrivateKey)
		if err != nil {
			return nil, err
		}
		backend := evm.NewSimulatedBackend([]common.Address{deployer}, utils.ApplyDefaultDenomination(100))
		chain, err := evm.NewChain(ctx, wrap(backend), network)
		if err != nil {
			backend.Close()
			return nil, err
		}
		return chain, nil
	}
}

type execution struct {
	stdout   string
	stderr   string
	exitCode int
}

// runs the marketplace command in process, as main does
func run(args ...string) execution {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	code := cobrautils.HandleErrors(err)
	closeLogs(rootCmd, nil)
	return execution{
		stdout:   out.String(),
		stderr:   errOut.String(),
		exitCode: code,
	}
}

var _ = ginkgo.Describe("[marketplace]", func() {
	var (
		projectDir   string
		artifactsDir string
		configPath   string
	)

	ginkgo.BeforeEach(func() {
		home := ginkgo.GinkgoT().TempDir()
		oldHome := os.Getenv("HOME")
		gomega.Expect(os.Setenv("HOME", home)).Should(gomega.Succeed())
		ginkgo.DeferCleanup(os.Setenv, "HOME", oldHome)

		projectDir = ginkgo.GinkgoT().TempDir()
		artifactsDir = filepath.Join(projectDir, "artifacts")
		configPath = filepath.Join(projectDir, "marketplace.yaml")
		gomega.Expect(os.WriteFile(configPath, []byte(unreachableConfig), constants.WriteReadReadPerms)).Should(gomega.Succeed())
	})

	writeArtifact := func(bytecode string) {
		testutils.WriteMarketplaceArtifact(ginkgo.GinkgoT(), afero.NewOsFs(), artifactsDir, bytecode)
	}

	ginkgo.Context("deploy", func() {
		ginkgo.It("deploys with no subcommand", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			deployer, err := signer.PrivateKeyToAddress(constants.DevPrivateKey)
			gomega.Expect(err).Should(gomega.BeNil())

			res := run("--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			gomega.Expect(res.stderr).Should(gomega.BeEmpty())

			lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
			gomega.Expect(lines).Should(gomega.HaveLen(9))
			gomega.Expect(lines[0]).Should(gomega.Equal("Initializing contract deployment..."))
			gomega.Expect(lines[1]).Should(gomega.Equal("Deployer address: " + deployer.Hex()))
			gomega.Expect(lines[2]).Should(gomega.Equal("Contract factory for 'NFTMarketplace' retrieved."))
			gomega.Expect(lines[3]).Should(gomega.Equal("Deploying the contract..."))
			gomega.Expect(lines[4]).Should(gomega.Equal("Waiting for the deployment to be confirmed..."))
			gomega.Expect(lines[5]).Should(gomega.Equal("NFTMarketplace contract deployed successfully!"))
			gomega.Expect(lines[6]).Should(gomega.Equal("Contract Address: " + crypto.CreateAddress(deployer, 0).Hex()))
			gomega.Expect(lines[7]).Should(gomega.HavePrefix("Deployer's balance: 9999."))
			gomega.Expect(lines[7]).Should(gomega.HaveSuffix(" AIA"))
			gomega.Expect(lines[8]).Should(gomega.Equal("Deployment script executed successfully."))
		})

		ginkgo.It("writes the log file", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			res := run("deploy", "--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			logFile := filepath.Join(os.Getenv("HOME"), constants.BaseDirName, constants.LogDir, constants.LogName+".log")
			content, err := os.ReadFile(logFile)
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(string(content)).Should(gomega.ContainSubstring("Contract Address"))
		})

		ginkgo.It("fails when the contract was not compiled", func() {
			res := run("deploy", "--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.HavePrefix("Error during deployment: artifact not found"))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("Deployer address"))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("Deploying the contract..."))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("executed successfully"))
		})

		ginkgo.It("fails for an unknown contract name", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			res := run("deploy", "--artifacts", artifactsDir, "--contract", "Auction")
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.ContainSubstring(`no artifact for contract "Auction"`))
		})

		ginkgo.It("fails without submitting when the signer is invalid", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			gomega.Expect(os.Setenv("MARKETPLACE_PRIVATE_KEY", "0xnotakey")).Should(gomega.Succeed())
			ginkgo.DeferCleanup(os.Unsetenv, "MARKETPLACE_PRIVATE_KEY")

			res := run("--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.ContainSubstring("Error during deployment: environment error: invalid private key at index 0"))
			gomega.Expect(res.stderr).ShouldNot(gomega.ContainSubstring("notakey"))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("Deployer address"))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("Deploying the contract..."))
		})

		ginkgo.It("reports network failures", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			res := run("deploy", "--config", configPath, "--network", "local", "--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.HavePrefix("Error during deployment: network error"))
			gomega.Expect(res.stderr).Should(gomega.ContainSubstring("http://127.0.0.1:1"))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("Deploying the contract..."))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("deployed successfully"))
		})

		ginkgo.It("records deployments into remote networks with the node chain id", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			connectChain = inProcessConnector(func(b *evm.SimulatedBackend) evm.Backend { return b })
			ginkgo.DeferCleanup(func() { connectChain = nil })
			deployer, err := signer.PrivateKeyToAddress(constants.DevPrivateKey)
			gomega.Expect(err).Should(gomega.BeNil())

			res := run("deploy", "--config", configPath, "--network", "aia-devnet", "--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			gomega.Expect(res.stdout).Should(gomega.HaveSuffix("Deployment script executed successfully.\n"))

			records, err := app.ReadDeploymentRecords()
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(records).Should(gomega.HaveLen(1))
			gomega.Expect(records[0].Network).Should(gomega.Equal("aia-devnet"))
			gomega.Expect(records[0].ChainID).Should(gomega.Equal(uint64(constants.SimulatedChainID)))
			gomega.Expect(records[0].Address).Should(gomega.Equal(crypto.CreateAddress(deployer, 0).Hex()))
			gomega.Expect(records[0].Deployer).Should(gomega.Equal(deployer.Hex()))
			gomega.Expect(records[0].BlockNumber).Should(gomega.Equal(uint64(1)))

			res = run("deployments")
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring(crypto.CreateAddress(deployer, 0).Hex()))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("1 deployment(s) recorded"))
		})

		ginkgo.It("reports network failures while waiting for the confirmation", func() {
			writeArtifact(testutils.MarketplaceBytecode)
			connectChain = inProcessConnector(func(b *evm.SimulatedBackend) evm.Backend {
				return &failingReceipts{SimulatedBackend: b}
			})
			ginkgo.DeferCleanup(func() { connectChain = nil })

			res := run("deploy", "--config", configPath, "--network", "aia-devnet", "--artifacts", artifactsDir)
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.HavePrefix("Error during deployment: network error: failure obtaining receipt"))
			gomega.Expect(res.stderr).Should(gomega.ContainSubstring("http://aia-devnet.test:8545"))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("Waiting for the deployment to be confirmed..."))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("deployed successfully"))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("executed successfully"))

			records, err := app.ReadDeploymentRecords()
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(records).Should(gomega.BeEmpty())
		})

		ginkgo.It("fails for an unknown network", func() {
			res := run("deploy", "--config", configPath, "--network", "mainnet")
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.ContainSubstring(`network "mainnet" is not configured`))
		})
	})

	ginkgo.Context("accounts", func() {
		ginkgo.It("lists the funded simulated accounts", func() {
			deployer, err := signer.PrivateKeyToAddress(constants.DevPrivateKey)
			gomega.Expect(err).Should(gomega.BeNil())
			res := run("accounts")
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring(deployer.Hex()))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("10000.0 AIA"))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("can pay for the deployment"))
		})
	})

	ginkgo.Context("networks", func() {
		ginkgo.It("prints json", func() {
			res := run("networks", "--config", configPath, "-o", "json")
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			networks := []map[string]interface{}{}
			gomega.Expect(json.Unmarshal([]byte(res.stdout), &networks)).Should(gomega.Succeed())
			names := []string{}
			for _, n := range networks {
				names = append(names, n["name"].(string))
			}
			gomega.Expect(names).Should(gomega.Equal([]string{"aia-devnet", "aia-testnet", "local", "simulated"}))
			gomega.Expect(res.stdout).ShouldNot(gomega.ContainSubstring("59c6995e"))
		})

		ginkgo.It("prints yaml", func() {
			res := run("networks", "--config", configPath, "--output", "yaml")
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			networks := []map[string]interface{}{}
			gomega.Expect(yaml.Unmarshal([]byte(res.stdout), &networks)).Should(gomega.Succeed())
			gomega.Expect(networks).Should(gomega.HaveLen(4))
			gomega.Expect(networks[1]["chainId"]).Should(gomega.Equal(1320))
			gomega.Expect(networks[1]["confirmations"]).Should(gomega.Equal(2))
		})

		ginkgo.It("prints a table marking the selected network", func() {
			res := run("networks", "--config", configPath, "--network", "local")
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("local *"))
			gomega.Expect(res.stdout).Should(gomega.ContainSubstring("simulated://simulated"))
		})

		ginkgo.It("rejects unknown formats", func() {
			res := run("networks", "-o", "xml")
			gomega.Expect(res.exitCode).Should(gomega.Equal(1))
			gomega.Expect(res.stderr).Should(gomega.ContainSubstring(`invalid output format "xml"`))
		})
	})

	ginkgo.Context("deployments", func() {
		ginkgo.It("reports no deployments", func() {
			res := run("deployments")
			gomega.Expect(res.exitCode).Should(gomega.Equal(0))
			gomega.Expect(res.stdout).Should(gomega.Equal("No deployments recorded\n"))
		})
	})

	ginkgo.It("rejects invalid log levels", func() {
		res := run("networks", "--log-level", "LOUD")
		gomega.Expect(res.exitCode).Should(gomega.Equal(1))
		gomega.Expect(res.stderr).Should(gomega.ContainSubstring("invalid log level configured: LOUD"))
	})

	ginkgo.It("rejects unexpected arguments", func() {
		res := run("deploy", "extra")
		gomega.Expect(res.exitCode).Should(gomega.Equal(1))
		gomega.Expect(res.stderr).Should(gomega.ContainSubstring("Usage error"))
	})
})
