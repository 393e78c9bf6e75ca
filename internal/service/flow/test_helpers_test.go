package flow

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_identity "github.com/bookwise/bookwise-cli/internal/client/identity/mocks"
	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// testFlowSetup encapsulates common test dependencies and configuration.
type testFlowSetup struct {
	ctrl       *gomock.Controller
	mockClient *mock_identity.MockClient
	store      *session.Store
	controller *ControllerImpl
	navigated  chan Navigation
	config     *config.Config
}

// newTestFlowSetup creates a standard test setup with optional config overrides.
// The navigation handler feeds a buffered channel so tests can observe
// delayed redirects without racing them.
func newTestFlowSetup(t *testing.T, configOverrides ...func(*config.Config)) *testFlowSetup {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mock_identity.NewMockClient(ctrl)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	require.NoError(t, err)

	cfg := &config.Config{
		ParsedResendCooldown:      60 * time.Second,
		ParsedRedirectGracePeriod: 10 * time.Millisecond,
	}

	// Apply overrides.
	for _, override := range configOverrides {
		override(cfg)
	}

	navigated := make(chan Navigation, 1)
	controller := NewController(cfg, store, mockClient, func(target Navigation) {
		navigated <- target
	})

	t.Cleanup(controller.Close)

	return &testFlowSetup{
		ctrl:       ctrl,
		mockClient: mockClient,
		store:      store,
		controller: controller,
		navigated:  navigated,
		config:     cfg,
	}
}

// waitForNavigation blocks until the delayed redirect fires or the test times out.
func (s *testFlowSetup) waitForNavigation(t *testing.T) Navigation {
	t.Helper()

	select {
	case target := <-s.navigated:
		return target
	case <-time.After(time.Second):
		t.Fatal("expected a delayed navigation, got none")
		return NavigateNone
	}
}
