package mysql

import (
	"context"

	"dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Submissions: &SubmissionRepository{db: tx},
			ReviewLogs:  &ReviewLogRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subs := &SubmissionRepository{db: tx}
		r := uow.Repos{
			Submissions: subs,
			ReviewLogs:  &ReviewLogRepository{db: tx},
		}
		// lock the submission row up-front to prevent races
		s, err := subs.GetBySubmissionIDForUpdate(ctx, submissionID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
