// Package mocks provides mock implementations for testing the service layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// ports interfaces. The mocks are generated using go:generate directives and provide
// a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockStore := mocks.NewMockMoodStore(ctrl)
//	mockStore.EXPECT().Entries(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)
package mocks

// Generate mock for Responder interface from internal/ports package.
// This creates MockResponder with methods for all Responder interface methods:
// Respond
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=responder_mock.go github.com/campuswell/cw-ui-api/internal/ports Responder

// Generate mock for MoodStore interface from internal/ports package.
// This creates MockMoodStore with methods for all MoodStore interface methods:
// Entries, SaveEntry
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=mood_store_mock.go github.com/campuswell/cw-ui-api/internal/ports MoodStore
