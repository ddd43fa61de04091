package main

import (
	"github.com/spf13/cobra"

	"github.com/reposcout/reposcout/pkg/config"
	"github.com/reposcout/reposcout/pkg/di"
)

// Global CLI state, assembled once per invocation in PersistentPreRunE.
var (
	container di.Container
	cfg       *config.Config
	flagCfg   *config.FlagConfig
)

// newRootCommand creates the root cobra command with all subcommands.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reposcout",
		Short: "Reposcout resolves repository references into normalized identities",
		Long: `Reposcout takes a loosely-formatted repository reference (a URL,
an owner/repo shorthand, or a git remote) and resolves it into a
normalized, provider-tagged identity, fetching repository visibility
from the GitHub API when credentials allow.

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (REPOSCOUT_*)
  3. Configuration files (~/.config/reposcout/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0  - Success
  1  - Generic error
  2  - Configuration error (missing config, invalid values)
  3  - Validation error (unparseable reference, missing owner/repo)
  4  - Authentication error (bad token shape, app installation required)
  5  - Network error (app token exchange failure)

Examples:
  reposcout resolve golang/go
  reposcout resolve https://github.com/golang/go/tree/master --token ghp_xxx
  REPOSCOUT_GITHUB_APP_ID=123 reposcout resolve https://gitlab.com/inkscape/inkscape
  reposcout serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return initializeContainer(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cleanupContainer()
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newValidationError("invalid flag usage", err)
	})

	flagCfg = config.AddFlags(cmd)

	cmd.AddCommand(
		newResolveCommand(),
		newServeCommand(),
		newVersionCommand(),
	)

	return cmd
}

// initializeContainer builds configuration and the dependency container.
func initializeContainer(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cmd, flagCfg)
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}

	container, err = di.New(di.WithConfig(cfg))
	if err != nil {
		return newConfigError("failed to initialize dependencies", err)
	}
	return nil
}

func cleanupContainer() {
	if container != nil {
		_ = container.Close()
	}
}
