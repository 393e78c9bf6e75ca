package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bookwise/bookwise-cli/internal/app"
)

var (
	loginCmd = &cobra.Command{
		Use:   "login {phone} {password}",
		Short: "Log in to BookWise",
		Long: `Exchanges your phone number and password for a bearer token.

The token is stored in the session file and sent automatically by
later commands. Run 'bookwise-cli status' to see the current session.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteLoginCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Log out of BookWise",
		Long:  `Drops the bearer token and removes the session file.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteLogoutCommand(cmd.Context(), appConfig)
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Long: `Shows the session state: whether you are logged in, whether a
verification is pending, and what the bearer token says about its
own expiry (when it is a JWT).`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteStatusCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}
