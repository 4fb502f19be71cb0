package reviewlogmock

import (
	"context"

	domain "dealership-ops-api/internal/domain/reviewlog"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, l *domain.ReviewLog) error
	ListBySubmissionIDFn func(ctx context.Context, submissionID uint64) ([]domain.ReviewLog, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.ReviewLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]domain.ReviewLog, error) {
	if m.ListBySubmissionIDFn != nil {
		return m.ListBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}
