package handlers_test

import (
	"context"
	"errors"
	"time"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/very/long/path"

// mockStore is a test double for MappingStore with scripted failures.
type mockStore struct {
	putForwardErr error
	getForwardErr error
	putReverseErr error
	getReverseErr error
	existsErr     error
	existsResult  bool
}

func (m *mockStore) PutForward(_ context.Context, _, _ string, _ time.Duration) error {
	return m.putForwardErr
}

func (m *mockStore) GetForward(_ context.Context, _ string) (string, bool, error) {
	if m.getForwardErr != nil {
		return "", false, m.getForwardErr
	}

	return "", false, nil
}

func (m *mockStore) PutReverse(_ context.Context, _, _ string, _ time.Duration) error {
	return m.putReverseErr
}

func (m *mockStore) GetReverse(_ context.Context, _ string) (string, bool, error) {
	if m.getReverseErr != nil {
		return "", false, m.getReverseErr
	}

	return "", false, nil
}

func (m *mockStore) ExistsForward(_ context.Context, _ string) (bool, error) {
	return m.existsResult, m.existsErr
}
