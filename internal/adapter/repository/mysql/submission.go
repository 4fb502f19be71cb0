package mysql

import (
	"context"

	submissionDomain "dealership-ops-api/internal/domain/submission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *SubmissionRepository) Tx(ctx context.Context, fn func(repo submissionDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SubmissionRepository{db: tx})
	})
}

func (r *SubmissionRepository) Create(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no FOR UPDATE; the version guard in SaveTransition
	// still protects the write there.
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out submissionDomain.Submission
	res := q.Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

// SaveTransition writes the full row guarded by the version read at load
// time. A concurrent writer that got there first leaves zero matched rows,
// which surfaces as ErrConflict with the in-memory version rolled back.
func (r *SubmissionRepository) SaveTransition(ctx context.Context, s *submissionDomain.Submission) error {
	prev := s.Version
	s.Version = prev + 1

	res := r.db.WithContext(ctx).
		Model(s).
		Where("version = ?", prev).
		Select("*").
		Omit("id", "created_at").
		Updates(s)
	if res.Error != nil {
		s.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		s.Version = prev
		return submissionDomain.ErrConflict
	}
	return nil
}

func (r *SubmissionRepository) ListByScraperID(ctx context.Context, scraperID string, stage *submissionDomain.Stage) ([]submissionDomain.Submission, error) {
	q := r.db.WithContext(ctx).Where("scraper_id = ?", scraperID)
	if stage != nil {
		q = q.Where("stage = ?", *stage)
	}
	var out []submissionDomain.Submission
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) ListByStage(ctx context.Context, stage submissionDomain.Stage) ([]submissionDomain.Submission, error) {
	var out []submissionDomain.Submission
	res := r.db.WithContext(ctx).
		Where("stage = ?", stage).
		Order("created_at ASC, id ASC"). // oldest first: review queues drain in arrival order
		Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) ListAll(ctx context.Context, stage *submissionDomain.Stage) ([]submissionDomain.Submission, error) {
	q := r.db.WithContext(ctx)
	if stage != nil {
		q = q.Where("stage = ?", *stage)
	}
	var out []submissionDomain.Submission
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) CountByStage(ctx context.Context, scraperID string) (map[submissionDomain.Stage]int64, error) {
	type row struct {
		Stage submissionDomain.Stage
		N     int64
	}
	q := r.db.WithContext(ctx).
		Model(&submissionDomain.Submission{}).
		Select("stage, COUNT(*) AS n")
	if scraperID != "" {
		q = q.Where("scraper_id = ?", scraperID)
	}
	var rows []row
	if err := q.Group("stage").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[submissionDomain.Stage]int64, len(rows))
	for _, r := range rows {
		out[r.Stage] = r.N
	}
	return out, nil
}
