package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/internal/domain/uow"
	"dealership-ops-api/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates both tables, so UoW can orchestrate both repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&submissionSQLite{}, &reviewLogSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	subRepo := NewSubmissionRepository(db)
	logRepo := NewReviewLogRepository(db)

	subID := id.NewID32()
	logID := id.NewID32()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		// Create submission, then a log referencing its numeric ID
		s := makeSubmission(subID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
		if err := r.Submissions.Create(ctx, s); err != nil {
			return err
		}
		if s.ID == 0 {
			t.Fatalf("submission auto ID not set")
		}
		l := makeReviewLog(s.ID, "approve", "pending_supervisor", "pending_manager", time.Now())
		l.LogID = logID
		return r.ReviewLogs.Create(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	got, err := subRepo.GetBySubmissionID(ctx, subID)
	if err != nil {
		t.Fatalf("submission not visible after commit: %v", err)
	}
	logs, err := logRepo.ListBySubmissionID(ctx, got.ID)
	if err != nil || len(logs) != 1 || logs[0].LogID != logID {
		t.Fatalf("log not visible after commit: %v %+v", err, logs)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	subRepo := NewSubmissionRepository(db)

	subID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		s := makeSubmission(subID, "cccccccccccccccccccccccccccccccc")
		if err := r.Submissions.Create(ctx, s); err != nil {
			return err
		}
		if err := r.ReviewLogs.Create(ctx, makeReviewLog(s.ID, "approve", "pending_supervisor", "pending_manager", time.Now())); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// None should exist after rollback
	if _, err := subRepo.GetBySubmissionID(ctx, subID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected submission not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinSubmissionTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	subRepo := NewSubmissionRepository(db)
	logRepo := NewReviewLogRepository(db)

	subID := id.NewID32()
	if err := subRepo.Create(ctx, makeSubmission(subID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	// Execute WithinSubmissionTx: should fetch the row and pass it to fn
	if err := guow.WithinSubmissionTx(ctx, subID, func(r uow.Repos, s *domain.Submission) error {
		if s == nil || s.SubmissionID != subID || s.Stage != domain.StagePendingSupervisor {
			t.Fatalf("unexpected submission passed to fn: %+v", s)
		}

		if err := r.ReviewLogs.Create(ctx, makeReviewLog(s.ID, "approve", "pending_supervisor", "pending_manager", time.Now())); err != nil {
			return err
		}

		s.Stage = domain.StagePendingManager
		return r.Submissions.SaveTransition(ctx, s)
	}); err != nil {
		t.Fatalf("WithinSubmissionTx commit err: %v", err)
	}

	// Verify changes
	got, err := subRepo.GetBySubmissionID(ctx, subID)
	if err != nil {
		t.Fatalf("GetBySubmissionID post-commit: %v", err)
	}
	if got.Stage != domain.StagePendingManager || got.Version != 2 {
		t.Fatalf("stage not updated, got=%s version=%d", got.Stage, got.Version)
	}
	logs, err := logRepo.ListBySubmissionID(ctx, got.ID)
	if err != nil || len(logs) != 1 {
		t.Fatalf("log not visible after commit: %v %+v", err, logs)
	}
}

func TestGormUoW_WithinSubmissionTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	subRepo := NewSubmissionRepository(db)
	logRepo := NewReviewLogRepository(db)

	subID := id.NewID32()
	if err := subRepo.Create(ctx, makeSubmission(subID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	sentinel := errors.New("stop")
	var numericID uint64

	_ = guow.WithinSubmissionTx(ctx, subID, func(r uow.Repos, s *domain.Submission) error {
		numericID = s.ID
		if err := r.ReviewLogs.Create(ctx, makeReviewLog(s.ID, "approve", "pending_supervisor", "pending_manager", time.Now())); err != nil {
			return err
		}
		s.Stage = domain.StagePendingManager
		if err := r.Submissions.SaveTransition(ctx, s); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// After rollback: stage unchanged, audit entry absent
	got, err := subRepo.GetBySubmissionID(ctx, subID)
	if err != nil {
		t.Fatalf("post-rollback GetBySubmissionID: %v", err)
	}
	if got.Stage != domain.StagePendingSupervisor || got.Version != 1 {
		t.Fatalf("expected untouched row after rollback, got stage=%s version=%d", got.Stage, got.Version)
	}
	logs, err := logRepo.ListBySubmissionID(ctx, numericID)
	if err != nil || len(logs) != 0 {
		t.Fatalf("expected no logs after rollback, got %v %+v", err, logs)
	}
}

func TestGormUoW_WithinSubmissionTx_NotFound(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)

	err := guow.WithinSubmissionTx(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(r uow.Repos, s *domain.Submission) error {
		t.Fatalf("callback should not be called when submission missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
