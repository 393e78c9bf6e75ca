package app

import (
	"context"

	"github.com/bookwise/bookwise-cli/internal/config"
)

// ExecuteLoginCommand executes the login command. It exchanges the
// identifier and password for a bearer token and persists it, so later
// commands run authenticated.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, identifier, password string) {
	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	reportOutcome(ctx, runtime.controller.Login(ctx, identifier, password))
}
