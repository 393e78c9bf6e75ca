package app

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/config"
)

// ExecuteForgotCommand executes the forgot-password command. It sends a
// reset code to the identifier and stores it as pending, so the verify and
// reset-password commands can pick the flow up from there.
func ExecuteForgotCommand(ctx context.Context, cfg *config.Config, identifier string) {
	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	reportOutcome(ctx, runtime.controller.RequestReset(ctx, identifier))
}
