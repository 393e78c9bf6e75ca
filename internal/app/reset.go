package app

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/logger"
	"github.com/bookwise/bookwise-cli/internal/utils"
)

// ExecuteResetPasswordCommand executes the reset-password command. It
// requires a verified code in the session, collected earlier by the forgot
// and verify commands.
func ExecuteResetPasswordCommand(ctx context.Context, cfg *config.Config, newPassword, confirmPassword string) {
	if newPassword != "" && utils.IsWeakPassword(newPassword) {
		logger.Warnf(ctx, "Weak password (score %d of %d), consider at least %d characters with an uppercase letter, a digit and a symbol",
			utils.PasswordScore(newPassword),
			utils.MaxPasswordScore,
			utils.StrongPasswordLength)
	}

	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	guard := runtime.controller.EnterReset()
	if guard.Failed() {
		reportOutcome(ctx, guard)
	}

	reportOutcome(ctx, runtime.controller.ResetPassword(ctx, newPassword, confirmPassword))
}
