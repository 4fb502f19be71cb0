package uow

import (
	"context"

	"dealership-ops-api/internal/domain/reviewlog"
	"dealership-ops-api/internal/domain/submission"
)

type Repos struct {
	Submissions submission.Repository
	ReviewLogs  reviewlog.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the submission row first, then pass it in
	WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r Repos, s *submission.Submission) error) error
}
