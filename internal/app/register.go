package app

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/client/identity"
	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/logger"
	"github.com/bookwise/bookwise-cli/internal/utils"
)

// ExecuteRegisterCommand executes the register command. It creates the
// account, stores the phone number as the pending identifier, and points
// the user at the verify command.
func ExecuteRegisterCommand(ctx context.Context, cfg *config.Config, profile *identity.Profile) {
	if utils.IsWeakPassword(profile.Password) {
		logger.Warnf(ctx, "Weak password (score %d of %d), consider at least %d characters with an uppercase letter, a digit and a symbol",
			utils.PasswordScore(profile.Password),
			utils.MaxPasswordScore,
			utils.StrongPasswordLength)
	}

	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	reportOutcome(ctx, runtime.controller.Register(ctx, profile))
}
