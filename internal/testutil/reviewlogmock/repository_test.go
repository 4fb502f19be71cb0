package reviewlogmock

import (
	"context"
	"errors"
	"testing"

	domain "dealership-ops-api/internal/domain/reviewlog"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.ReviewLog{LogID: "l1"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.ReviewLog) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_ListBySubmissionID(t *testing.T) {
	ctx := context.Background()
	want := []domain.ReviewLog{{LogID: "l2"}}

	called := false
	m := &Repo{
		ListBySubmissionIDFn: func(gotCtx context.Context, submissionID uint64) ([]domain.ReviewLog, error) {
			called = true
			if submissionID != 42 {
				t.Fatalf("ListBySubmissionID id mismatch: got %d", submissionID)
			}
			return want, nil
		},
	}
	got, err := m.ListBySubmissionID(ctx, 42)
	if err != nil || len(got) != 1 || got[0].LogID != "l2" {
		t.Fatalf("ListBySubmissionID: %v %v", got, err)
	}
	if !called {
		t.Fatalf("ListBySubmissionIDFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, err := m.ListBySubmissionID(ctx, 42); err != context.Canceled {
		t.Fatalf("ListBySubmissionID default: want context.Canceled, got %v", err)
	}
}
