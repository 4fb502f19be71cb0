package submission

import (
	"context"
	"errors"
	"time"

	"dealership-ops-api/internal/domain/reviewlog"
	domain "dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	logs reviewlog.Repository
}

func NewUsecase(repo domain.Repository, logs reviewlog.Repository) *Usecase {
	return &Usecase{repo: repo, logs: logs}
}

// Create ingests raw scraped fields: required-field validation, one-time
// auto-flag screening, then persistence at the first review gate.
func (u *Usecase) Create(ctx context.Context, actorID string, in CreateInput) (*SubmissionDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	s := &domain.Submission{
		SubmissionID: id.NewID32(),
		ScraperID:    actorID,

		Make:       in.Make,
		Model:      in.Model,
		Year:       *in.Year,
		Kilometers: *in.Kilometers,
		Price:      *in.Price,

		Trim:         in.Trim,
		Location:     in.Location,
		Province:     in.Province,
		Color:        in.Color,
		Transmission: in.Transmission,
		FuelType:     in.FuelType,
		BodyType:     in.BodyType,
		Drivetrain:   in.Drivetrain,
		VIN:          in.VIN,
		ImageURLs:    in.ImageURLs,
		Notes:        in.Notes,

		Stage: domain.StagePendingSupervisor,
		AutoFlags: AnalyzeFields(FieldValues{
			Kilometers: *in.Kilometers,
			Price:      *in.Price,
			Year:       *in.Year,
		}, time.Now().UTC()),
		Version: 1,
	}

	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return ToDTO(s), nil
}

func validateCreate(in CreateInput) error {
	switch {
	case in.Make == "":
		return &domain.ValidationError{Field: "make", Message: "is required"}
	case in.Model == "":
		return &domain.ValidationError{Field: "model", Message: "is required"}
	case in.Year == nil:
		return &domain.ValidationError{Field: "year", Message: "is required"}
	case in.Kilometers == nil:
		return &domain.ValidationError{Field: "kilometers", Message: "is required"}
	case in.Price == nil:
		return &domain.ValidationError{Field: "price", Message: "is required"}
	}
	return nil
}

func (u *Usecase) ListMine(ctx context.Context, actorID string, stage *domain.Stage) ([]SubmissionDTO, error) {
	rows, err := u.repo.ListByScraperID(ctx, actorID, stage)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ListPendingForRole returns the review queue a role is gated on.
func (u *Usecase) ListPendingForRole(ctx context.Context, role domain.Role) ([]SubmissionDTO, error) {
	var stage domain.Stage
	switch role {
	case domain.RoleSupervisor:
		stage = domain.StagePendingSupervisor
	case domain.RoleManager, domain.RoleAdmin:
		stage = domain.StagePendingManager
	default:
		return nil, domain.ErrUnauthorized
	}
	rows, err := u.repo.ListByStage(ctx, stage)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (u *Usecase) ListAll(ctx context.Context, stage *domain.Stage) ([]SubmissionDTO, error) {
	rows, err := u.repo.ListAll(ctx, stage)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (u *Usecase) GetWithHistory(ctx context.Context, submissionID string) (*SubmissionWithHistoryDTO, error) {
	s, err := u.repo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	logs, err := u.logs.ListBySubmissionID(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	out := &SubmissionWithHistoryDTO{
		Submission: ToDTO(s),
		ReviewLogs: make([]ReviewLogDTO, 0, len(logs)),
	}
	for _, l := range logs {
		out.ReviewLogs = append(out.ReviewLogs, ReviewLogDTO{
			LogID:         l.LogID,
			ReviewerID:    l.ReviewerID,
			ReviewerRole:  l.ReviewerRole,
			Action:        l.Action,
			PreviousStage: l.PreviousStage,
			NewStage:      l.NewStage,
			Comments:      l.Comments,
			FlaggedFields: l.FlaggedFields,
			CreatedAt:     l.CreatedAt,
		})
	}
	return out, nil
}

// Stats projects per-actor counts. A scraper sees only its own submissions;
// reviewer roles see the whole store.
func (u *Usecase) Stats(ctx context.Context, actor domain.Actor) (*StatsDTO, error) {
	scope := ""
	if actor.Role == domain.RoleScraper {
		scope = actor.ID
	}
	counts, err := u.repo.CountByStage(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := &StatsDTO{}
	for stage, n := range counts {
		out.Total += n
		switch stage {
		case domain.StagePendingSupervisor, domain.StagePendingManager:
			out.Pending += n
		case domain.StageApproved, domain.StageUploaded:
			out.Approved += n
		case domain.StageRejected:
			out.Rejected += n
		}
	}
	return out, nil
}

func toDTOs(rows []domain.Submission) []SubmissionDTO {
	out := make([]SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *ToDTO(&rows[i]))
	}
	return out
}
