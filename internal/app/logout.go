package app

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/config"
)

// ExecuteLogoutCommand executes the logout command. It drops the bearer
// token and removes the session file.
func ExecuteLogoutCommand(ctx context.Context, cfg *config.Config) {
	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	reportOutcome(ctx, runtime.controller.Logout(ctx))
}
