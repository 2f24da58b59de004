package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/repodesc/internal/application"
	"github.com/inovacc/repodesc/internal/core"
	"github.com/spf13/cobra"
)

// newGitHubClient builds the client used by the root command; tests replace it
var newGitHubClient = func() (*github.Client, error) {
	return core.NewGitHubClientWithBaseURL(nil, application.APIBaseURL)
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   application.AppName + " [username]",
		Short: "List a GitHub user's public repositories",
		Long: `Repodesc fetches the public repositories of a GitHub user and prints
how many there are followed by each repository's description.

A single unauthenticated request is made to the GitHub REST API. Only the
first page of results is shown. Repositories without a description are
printed as "None".

If the API answers with any status other than 200, the line
"Error Retrieving repository data." is printed instead.

Examples:
  # List repositories of the default user (meta)
  repodesc

  # List repositories of another user
  repodesc octocat`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := newLogger(cmd.ErrOrStderr(), verbose)

			username := application.DefaultUsername
			if len(args) == 1 {
				username = args[0]
			}

			client, err := newGitHubClient()
			if err != nil {
				return err
			}

			lister := core.NewRepoLister(client, cmd.OutOrStdout(), logger)

			if err := lister.ListRepositories(cmd.Context(), username); err != nil {
				logger.Error("failed to list repositories",
					slog.String("username", username),
					slog.String("error", err.Error()),
				)

				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Log request details to stderr")

	return cmd
}

// newLogger returns a text logger on w; warnings and above unless verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
