package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTxManager returns a transaction manager mock that runs every Execute
// callback against the given factory, standing in for a real transaction.
func newTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepos repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

// fixedClock pins a service's notion of now to a deterministic instant.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
