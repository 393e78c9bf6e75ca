package app

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/logger"
	"github.com/bookwise/bookwise-cli/internal/service/flow"
)

// ExecuteVerifyCommand executes the verify command. It submits a one-time
// code for the pending identifier; with an empty code it prompts for the
// digits first. A successful verification waits out the grace period and
// then points the user at the login command.
func ExecuteVerifyCommand(ctx context.Context, cfg *config.Config, code string) {
	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	guard := runtime.controller.EnterVerification()
	if guard.Failed() {
		reportOutcome(ctx, guard)
	}

	if code == "" {
		code = promptForCode(ctx, runtime.controller)
	}

	outcome := runtime.controller.SubmitCode(ctx, runtime.store.PendingIdentifier(), code)
	if outcome.Failed() {
		reportOutcome(ctx, outcome)
	}

	logger.Info(ctx, outcome.Message)

	// The redirect is delayed by the grace period so the confirmation
	// stays on screen for a moment.
	select {
	case target := <-runtime.navigated:
		logger.Infof(ctx, "Next step: %s", commandHint(target))
	case <-ctx.Done():
	}
}

// ExecuteResendCommand executes the verify command's resend action. The
// resend lock is honored: the command waits out the remaining cooldown
// before requesting a fresh code.
func ExecuteResendCommand(ctx context.Context, cfg *config.Config) {
	runtime := newFlowRuntime(ctx, cfg)
	defer runtime.controller.Close()

	guard := runtime.controller.EnterVerification()
	if guard.Failed() {
		reportOutcome(ctx, guard)
	}

	if !waitForResend(ctx, runtime.controller) {
		return
	}

	reportOutcome(ctx, runtime.controller.ResendCode(ctx, runtime.store.PendingIdentifier()))
}

// promptForCode reads the code digit by digit through the controller's
// entry, applying the same per-slot filter the verification screen uses.
func promptForCode(ctx context.Context, controller flow.Controller) string {
	logger.Info(ctx, "Enter the 4-digit code you received:")

	scanner := bufio.NewScanner(os.Stdin)
	codeEntry := controller.Entry()

	for !codeEntry.IsComplete() && scanner.Scan() {
		for _, r := range scanner.Text() {
			codeEntry.Input(r)
		}
	}

	return codeEntry.String()
}

// waitForResend drives the resend countdown at one tick per second until a
// new code may be requested. Returns false when the wait was interrupted.
func waitForResend(ctx context.Context, controller flow.Controller) bool {
	timer := controller.Timer()
	if timer.CanResend() {
		return true
	}

	// Progress bars are pointless when the output is not meant for a human.
	var bar *progressbar.ProgressBar
	if logger.Level() <= zap.InfoLevel {
		bar = progressbar.Default(int64(timer.SecondsRemaining()), "Waiting to resend")
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for !timer.CanResend() {
		select {
		case <-ticker.C:
			timer.Tick()

			if bar != nil {
				_ = bar.Add(1)
			}
		case <-ctx.Done():
			return false
		}
	}

	return true
}
