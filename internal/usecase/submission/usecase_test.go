package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/internal/testutil/reviewlogmock"
	"dealership-ops-api/internal/testutil/submissionmock"

	reviewlogDomain "dealership-ops-api/internal/domain/reviewlog"

	"gorm.io/gorm"
)

func intp(n int) *int           { return &n }
func floatp(f float64) *float64 { return &f }
func strp(s string) *string     { return &s }

func validInput() CreateInput {
	return CreateInput{
		Make:       "Toyota",
		Model:      "Corolla",
		Year:       intp(2022),
		Kilometers: intp(45_000),
		Price:      floatp(21_500),
		VIN:        strp("JTDBR32E720123456"),
	}
}

func TestCreate_Success(t *testing.T) {
	var created *domain.Submission
	uc := NewUsecase(&submissionmock.Repo{
		CreateFn: func(ctx context.Context, s *domain.Submission) error {
			if s.CreatedAt.IsZero() {
				s.CreatedAt = time.Now().UTC()
			}
			created = s
			return nil
		},
	}, &reviewlogmock.Repo{})

	dto, err := uc.Create(context.Background(), "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", validInput())
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(dto.SubmissionID) != 32 {
		t.Fatalf("SubmissionID length: %d", len(dto.SubmissionID))
	}
	if dto.Stage != string(domain.StagePendingSupervisor) {
		t.Fatalf("stage=%s", dto.Stage)
	}
	if dto.AutoFlags != nil {
		t.Fatalf("clean input should carry no auto-flags: %v", dto.AutoFlags)
	}
	if created.Version != 1 {
		t.Fatalf("new submission version=%d, want 1", created.Version)
	}
}

func TestCreate_AutoFlagsStoredOnce(t *testing.T) {
	uc := NewUsecase(&submissionmock.Repo{}, &reviewlogmock.Repo{})

	in := validInput()
	in.Kilometers = intp(600_000)
	in.Price = floatp(50_000)
	in.Year = intp(2022)

	dto, err := uc.Create(context.Background(), "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", in)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(dto.AutoFlags) != 1 || dto.AutoFlags["kilometers"] != ReasonUnusuallyHigh {
		t.Fatalf("auto flags = %v, want kilometers:unusually_high only", dto.AutoFlags)
	}
	if dto.Stage != string(domain.StagePendingSupervisor) {
		t.Fatalf("flagged submission must still enter the pipeline, stage=%s", dto.Stage)
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	uc := NewUsecase(&submissionmock.Repo{
		CreateFn: func(ctx context.Context, s *domain.Submission) error {
			t.Fatalf("Create must not be called for invalid input")
			return nil
		},
	}, &reviewlogmock.Repo{})

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"missing make", func(in *CreateInput) { in.Make = "" }, "make"},
		{"missing model", func(in *CreateInput) { in.Model = "" }, "model"},
		{"missing year", func(in *CreateInput) { in.Year = nil }, "year"},
		{"missing kilometers", func(in *CreateInput) { in.Kilometers = nil }, "kilometers"},
		{"missing price", func(in *CreateInput) { in.Price = nil }, "price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field=%s want %s", ve.Field, tc.field)
			}
		})
	}
}

func TestListPendingForRole(t *testing.T) {
	var askedStage domain.Stage
	repo := &submissionmock.Repo{
		ListByStageFn: func(ctx context.Context, stage domain.Stage) ([]domain.Submission, error) {
			askedStage = stage
			return []domain.Submission{{SubmissionID: "s1", Stage: stage}}, nil
		},
	}
	uc := NewUsecase(repo, &reviewlogmock.Repo{})

	if _, err := uc.ListPendingForRole(context.Background(), domain.RoleSupervisor); err != nil {
		t.Fatalf("supervisor queue: %v", err)
	}
	if askedStage != domain.StagePendingSupervisor {
		t.Fatalf("supervisor queue stage=%s", askedStage)
	}

	if _, err := uc.ListPendingForRole(context.Background(), domain.RoleManager); err != nil {
		t.Fatalf("manager queue: %v", err)
	}
	if askedStage != domain.StagePendingManager {
		t.Fatalf("manager queue stage=%s", askedStage)
	}

	if _, err := uc.ListPendingForRole(context.Background(), domain.RoleScraper); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("scraper must have no review queue, got %v", err)
	}
}

func TestGetWithHistory(t *testing.T) {
	now := time.Now().UTC()
	repo := &submissionmock.Repo{
		GetBySubmissionIDFn: func(ctx context.Context, id string) (*domain.Submission, error) {
			return &domain.Submission{ID: 42, SubmissionID: id, Stage: domain.StagePendingSupervisor}, nil
		},
	}
	logs := &reviewlogmock.Repo{
		ListBySubmissionIDFn: func(ctx context.Context, id uint64) ([]reviewlogDomain.ReviewLog, error) {
			if id != 42 {
				t.Fatalf("history queried with wrong numeric id: %d", id)
			}
			return []reviewlogDomain.ReviewLog{
				{LogID: "l1", PreviousStage: "pending_supervisor", NewStage: "pending_manager", CreatedAt: now},
				{LogID: "l2", PreviousStage: "pending_manager", NewStage: "pending_supervisor", CreatedAt: now.Add(time.Minute)},
			}, nil
		},
	}
	uc := NewUsecase(repo, logs)

	out, err := uc.GetWithHistory(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("GetWithHistory: %v", err)
	}
	if len(out.ReviewLogs) != 2 {
		t.Fatalf("logs=%d want 2", len(out.ReviewLogs))
	}
	if out.ReviewLogs[1].PreviousStage != "pending_manager" || out.ReviewLogs[1].NewStage != "pending_supervisor" {
		t.Fatalf("second log pair wrong: %+v", out.ReviewLogs[1])
	}
}

func TestGetWithHistory_NotFound(t *testing.T) {
	repo := &submissionmock.Repo{
		GetBySubmissionIDFn: func(ctx context.Context, id string) (*domain.Submission, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo, &reviewlogmock.Repo{})

	if _, err := uc.GetWithHistory(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestStats_ScopesAndBuckets(t *testing.T) {
	var askedScope string
	repo := &submissionmock.Repo{
		CountByStageFn: func(ctx context.Context, scraperID string) (map[domain.Stage]int64, error) {
			askedScope = scraperID
			return map[domain.Stage]int64{
				domain.StagePendingSupervisor: 2,
				domain.StagePendingManager:    1,
				domain.StageApproved:          3,
				domain.StageUploaded:          4,
				domain.StageRejected:          5,
			}, nil
		},
	}
	uc := NewUsecase(repo, &reviewlogmock.Repo{})

	scraper := domain.Actor{ID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Role: domain.RoleScraper}
	stats, err := uc.Stats(context.Background(), scraper)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if askedScope != scraper.ID {
		t.Fatalf("scraper stats must be scoped to own rows, scope=%q", askedScope)
	}
	if stats.Pending != 3 || stats.Approved != 7 || stats.Rejected != 5 || stats.Total != 15 {
		t.Fatalf("stats buckets wrong: %+v", stats)
	}

	manager := domain.Actor{ID: "cccccccccccccccccccccccccccccccc", Role: domain.RoleManager}
	if _, err := uc.Stats(context.Background(), manager); err != nil {
		t.Fatalf("Stats manager: %v", err)
	}
	if askedScope != "" {
		t.Fatalf("reviewer stats must be unscoped, scope=%q", askedScope)
	}
}
