package config

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTestCommand() (*cobra.Command, *FlagConfig) {
	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}}
	fc := AddFlags(cmd)
	return cmd, fc
}

func TestFlagsApply(t *testing.T) {
	cmd, fc := newTestCommand()
	cmd.SetArgs([]string{
		"--token", "ghp_from_flag",
		"--app-id", "42",
		"--installation-id", "99",
		"--addr", ":9090",
		"--log-level", "debug",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	cfg := New()
	cfg.Integration.GitHub.Token = "ghp_from_env"
	fc.Apply(cmd.Flags(), cfg)

	if cfg.Integration.GitHub.Token != "ghp_from_flag" {
		t.Fatalf("flags must win over lower layers, token = %q", cfg.Integration.GitHub.Token)
	}
	if cfg.Integration.GitHub.App.ID != 42 || cfg.Integration.GitHub.App.InstallationID != 99 {
		t.Fatalf("app = %+v", cfg.Integration.GitHub.App)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
}

func TestFlagsUntouchedDoNotClobber(t *testing.T) {
	cmd, fc := newTestCommand()
	cmd.SetArgs([]string{"--log-level", "warn"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	cfg := New()
	cfg.Integration.GitHub.Token = "ghp_from_file"
	cfg.Server.Addr = ":7070"
	fc.Apply(cmd.Flags(), cfg)

	if cfg.Integration.GitHub.Token != "ghp_from_file" {
		t.Fatalf("unset flag clobbered token: %q", cfg.Integration.GitHub.Token)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("unset flag clobbered addr: %q", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
}
