package mysql

import (
	"context"

	reviewlogDomain "dealership-ops-api/internal/domain/reviewlog"

	"gorm.io/gorm"
)

type ReviewLogRepository struct{ db *gorm.DB }

func NewReviewLogRepository(db *gorm.DB) *ReviewLogRepository {
	return &ReviewLogRepository{db: db}
}

func (r *ReviewLogRepository) Create(ctx context.Context, l *reviewlogDomain.ReviewLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ReviewLogRepository) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]reviewlogDomain.ReviewLog, error) {
	var out []reviewlogDomain.ReviewLog
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
