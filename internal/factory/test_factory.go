package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/atherden/boardwalk/internal/dependencies/mocks"
	"github.com/atherden/boardwalk/internal/services/engine"
	"github.com/atherden/boardwalk/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	// Events collects everything emitted through the sink
	Events *EventRecorder
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	recorder := NewEventRecorder()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app, err := newWithDependencies(store, mockClock, mockRandom, engine.DefaultConfig(), recorder.Record, logger)
	if err != nil {
		// Standard board data failing validation is a programming error
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Events:     recorder,
	}
}
