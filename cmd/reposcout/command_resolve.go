package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reposcout/reposcout/internal/resolver"
)

func newResolveCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <reference>",
		Short: "Resolve a repository reference into a normalized identity",
		Long: `Resolve accepts a repository URL, an owner/repo shorthand, or a git
remote and prints the normalized identity together with the repository
visibility fetched from GitHub. Metadata-fetch failures degrade to
isPrivate=false and are reported as warnings instead of failing the
resolution.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.Resolver().Resolve(cmd.Context(), args[0], container.AuthConfig())
			if err != nil {
				var installErr *resolver.AppInstallationRequiredError
				if errors.As(err, &installErr) {
					fmt.Fprintf(cmd.ErrOrStderr(),
						"The GitHub App is not installed yet. Install it at:\n  %s\n",
						installErr.InstallationURL)
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printResult(cmd *cobra.Command, result *resolver.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Repository: %s/%s\n", result.Owner, result.Repo)
	fmt.Fprintf(out, "Provider:   %s\n", result.Provider)
	fmt.Fprintf(out, "URL:        %s\n", result.NormalizedURL)
	if result.Branch != "" {
		fmt.Fprintf(out, "Branch:     %s\n", result.Branch)
	}
	if result.Commit != "" {
		fmt.Fprintf(out, "Commit:     %s\n", result.Commit)
	}
	fmt.Fprintf(out, "Private:    %t\n", result.IsPrivate)

	for _, warning := range result.Warnings {
		if warning.ResetAt != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning (%s): %s (resets %s)\n",
				warning.Kind, warning.Message, warning.ResetAt)
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning (%s): %s\n", warning.Kind, warning.Message)
	}
}
