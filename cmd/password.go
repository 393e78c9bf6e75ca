package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bookwise/bookwise-cli/internal/app"
)

var (
	forgotCmd = &cobra.Command{
		Use:   "forgot {phone}",
		Short: "Start the forgot-password flow",
		Long: `Sends a one-time reset code to the given phone number.

The flow continues with 'bookwise-cli verify <code>' and finishes
with 'bookwise-cli reset-password'.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteForgotCommand(cmd.Context(), appConfig, args[0])
		},
	}

	resetPasswordCmd = &cobra.Command{
		Use:   "reset-password {new-password} [confirmation]",
		Short: "Set a new password after verifying a reset code",
		Long: `Sets a new password for the account that completed the forgot-password
verification. Requires a verified code in the session; run
'bookwise-cli forgot <phone>' and 'bookwise-cli verify <code>' first.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			newPassword := args[0]

			confirmPassword := newPassword
			if len(args) > 1 {
				confirmPassword = args[1]
			}

			app.ExecuteResetPasswordCommand(cmd.Context(), appConfig, newPassword, confirmPassword)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(forgotCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}
