package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bookwise/bookwise-cli/internal/app"
	"github.com/bookwise/bookwise-cli/internal/client/identity"
)

var (
	registerCmd = &cobra.Command{
		Use:   "register",
		Short: "Create a BookWise account",
		Long: `Creates a new BookWise account.

The service sends a one-time code to the given phone number; finish
the signup with 'bookwise-cli verify <code>'.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			profile := &identity.Profile{}
			profile.Name, _ = flags.GetString("name")
			profile.Email, _ = flags.GetString("email")
			profile.Phone, _ = flags.GetString("phone")
			profile.Password, _ = flags.GetString("password")
			profile.PasswordConfirmation, _ = flags.GetString("password-confirmation")

			if profile.PasswordConfirmation == "" {
				profile.PasswordConfirmation = profile.Password
			}

			app.ExecuteRegisterCommand(cmd.Context(), appConfig, profile)
		},
	}

	verifyCmd = &cobra.Command{
		Use:   "verify [code]",
		Short: "Verify your account with a one-time code",
		Long: `Submits the 4-digit code sent to the phone number that is pending
verification. Without an argument the code is prompted for.

Use 'bookwise-cli resend' if the code never arrived.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var code string
			if len(args) > 0 {
				code = args[0]
			}

			app.ExecuteVerifyCommand(cmd.Context(), appConfig, code)
		},
	}

	resendCmd = &cobra.Command{
		Use:   "resend",
		Short: "Request a fresh one-time code",
		Long: `Requests a fresh one-time code for the pending verification.

Resending is rate limited; the command waits out the remaining
cooldown before asking for a new code.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteResendCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	registerCmdFlags := registerCmd.Flags()

	registerCmdFlags.StringP("name", "n", "", "display name of the new account.")
	registerCmdFlags.StringP("email", "e", "", "email address of the new account.")
	registerCmdFlags.StringP("phone", "p", "", "phone number; the one-time code is sent here.")
	registerCmdFlags.String("password", "", "password for the new account.")
	registerCmdFlags.String("password-confirmation", "", "password confirmation (defaults to the password).")

	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("phone")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(resendCmd)
}
