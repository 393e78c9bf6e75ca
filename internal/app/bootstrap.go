package app

import (
	"context"
	"os"

	"github.com/bookwise/bookwise-cli/internal/client/identity"
	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/logger"
	"github.com/bookwise/bookwise-cli/internal/service/flow"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// flowRuntime bundles the wired-up components a command needs.
type flowRuntime struct {
	store      *session.Store
	controller flow.Controller
	// navigated receives the grace-period redirect after a successful
	// verification. Buffered so the controller never blocks on it.
	navigated chan flow.Navigation
}

// newFlowRuntime builds the session store, the identity client, and the flow
// controller. The store doubles as the client's token source, so a token
// produced by one command is sent by the next.
func newFlowRuntime(ctx context.Context, cfg *config.Config) *flowRuntime {
	store, err := session.NewStore(cfg.SessionFile)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open session: %v", err)
	}

	identityClient, err := identity.NewClient(cfg, store)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize identity client: %v", err)
	}

	navigated := make(chan flow.Navigation, 1)
	controller := flow.NewController(cfg, store, identityClient, func(target flow.Navigation) {
		navigated <- target
	})

	return &flowRuntime{
		store:      store,
		controller: controller,
		navigated:  navigated,
	}
}

// reportOutcome logs an operation's result and terminates the process on
// failure. The outcome's message is already user-presentable.
func reportOutcome(ctx context.Context, outcome flow.Outcome) {
	if outcome.Failed() {
		logger.Errorf(ctx, "%s", outcome.Message)

		if hint := commandHint(outcome.Navigation); hint != "" {
			logger.Infof(ctx, "Next step: %s", hint)
		}

		os.Exit(1)
	}

	if outcome.Message != "" {
		logger.Info(ctx, outcome.Message)
	}

	if hint := commandHint(outcome.Navigation); hint != "" {
		logger.Infof(ctx, "Next step: %s", hint)
	}
}

// commandHint maps a navigation target onto the command the user runs next.
func commandHint(target flow.Navigation) string {
	switch target {
	case flow.NavigateHome:
		return "you are all set"
	case flow.NavigateLogin:
		return "bookwise-cli login <phone> <password>"
	case flow.NavigateSignup:
		return "bookwise-cli register"
	case flow.NavigateVerify:
		return "bookwise-cli verify <code>"
	default:
		return ""
	}
}
