package submissionmock

import (
	"context"

	domain "dealership-ops-api/internal/domain/submission"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                     func(ctx context.Context, s *domain.Submission) error
	GetBySubmissionIDFn          func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetBySubmissionIDForUpdateFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	SaveTransitionFn             func(ctx context.Context, s *domain.Submission) error
	ListByScraperIDFn            func(ctx context.Context, scraperID string, stage *domain.Stage) ([]domain.Submission, error)
	ListByStageFn                func(ctx context.Context, stage domain.Stage) ([]domain.Submission, error)
	ListAllFn                    func(ctx context.Context, stage *domain.Stage) ([]domain.Submission, error)
	CountByStageFn               func(ctx context.Context, scraperID string) (map[domain.Stage]int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDForUpdateFn != nil {
		return m.GetBySubmissionIDForUpdateFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveTransition(ctx context.Context, s *domain.Submission) error {
	if m.SaveTransitionFn != nil {
		return m.SaveTransitionFn(ctx, s)
	}
	return nil
}

func (m *Repo) ListByScraperID(ctx context.Context, scraperID string, stage *domain.Stage) ([]domain.Submission, error) {
	if m.ListByScraperIDFn != nil {
		return m.ListByScraperIDFn(ctx, scraperID, stage)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStage(ctx context.Context, stage domain.Stage) ([]domain.Submission, error) {
	if m.ListByStageFn != nil {
		return m.ListByStageFn(ctx, stage)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context, stage *domain.Stage) ([]domain.Submission, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, stage)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByStage(ctx context.Context, scraperID string) (map[domain.Stage]int64, error) {
	if m.CountByStageFn != nil {
		return m.CountByStageFn(ctx, scraperID)
	}
	return nil, context.Canceled
}
