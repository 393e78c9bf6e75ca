package app

import (
	"context"
	"time"

	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/logger"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// ExecuteStatusCommand executes the status command. It reports the session
// state and, when the bearer token happens to be a JWT, what the token says
// about itself. The token's signature is not checked; this is display only.
func ExecuteStatusCommand(ctx context.Context, cfg *config.Config) {
	store, err := session.NewStore(cfg.SessionFile)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open session: %v", err)
	}

	logger.Infof(ctx, "Session: %s", store.Status())

	if pending := store.PendingIdentifier(); pending != "" {
		logger.Infof(ctx, "Pending verification for: %s", pending)
	}

	if lastError := store.LastError(); lastError != "" {
		logger.Infof(ctx, "Last error: %s", lastError)
	}

	token := store.Token()
	if token == "" {
		return
	}

	info := session.InspectToken(token)
	if !info.IsJWT {
		logger.Info(ctx, "Token: opaque")
		return
	}

	if info.Subject != "" {
		logger.Infof(ctx, "Token subject: %s", info.Subject)
	}

	switch {
	case info.ExpiresAt.IsZero():
		logger.Info(ctx, "Token expiry: none")
	case info.Expired(time.Now()):
		logger.Warnf(ctx, "Token expired at %s, log in again", info.ExpiresAt.Format(time.RFC3339))
	default:
		logger.Infof(ctx, "Token expires at %s", info.ExpiresAt.Format(time.RFC3339))
	}
}
