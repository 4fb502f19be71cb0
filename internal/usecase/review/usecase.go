package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dealership-ops-api/internal/domain/inventory"
	"dealership-ops-api/internal/domain/reviewlog"
	domain "dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/internal/domain/uow"
	subuc "dealership-ops-api/internal/usecase/submission"
	"dealership-ops-api/pkg/id"

	"gorm.io/gorm"
)

// ErrPromotionFailed wraps an inventory write error during upload. The review
// decision itself is already committed when this is produced.
var ErrPromotionFailed = errors.New("promotion to inventory failed")

type Usecase struct {
	uow       uow.UnitOfWork
	inventory inventory.Creator
}

// NewUsecase: the UoW ties stage update and audit append into one tx; the
// inventory creator is only touched on upload, after commit.
func NewUsecase(tx uow.UnitOfWork, inv inventory.Creator) *Usecase {
	return &Usecase{uow: tx, inventory: inv}
}

// ReviewSupervisor handles the first gate. A reject may carry the fields the
// reviewer found suspect.
func (u *Usecase) ReviewSupervisor(ctx context.Context, submissionID string, actor domain.Actor, action domain.Action, comments string, flaggedFields []string) (*ReviewResult, error) {
	if action != domain.ActionApprove && action != domain.ActionReject {
		return nil, &domain.ValidationError{Field: "action", Message: "must be approve or reject"}
	}
	return u.transition(ctx, submissionID, actor, action, comments, flaggedFields, domain.StagePendingSupervisor)
}

// ReviewManager handles the second gate.
func (u *Usecase) ReviewManager(ctx context.Context, submissionID string, actor domain.Actor, action domain.Action, comments string) (*ReviewResult, error) {
	switch action {
	case domain.ActionApprove, domain.ActionUpload, domain.ActionSendBack, domain.ActionReject:
	default:
		return nil, &domain.ValidationError{Field: "action", Message: "must be approve, upload, send_back or reject"}
	}
	return u.transition(ctx, submissionID, actor, action, comments, nil, domain.StagePendingManager)
}

func (u *Usecase) transition(ctx context.Context, submissionID string, actor domain.Actor, action domain.Action, comments string, flaggedFields []string, gate domain.Stage) (*ReviewResult, error) {
	var snap *domain.Submission

	err := u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domain.Submission) error {
		if s.Stage != gate {
			return domain.ErrInvalidStage
		}
		if !domain.CanTransition(actor.Role, s.Stage, action) {
			return domain.ErrUnauthorized
		}
		next, ok := domain.NextStage(s.Stage, action)
		if !ok {
			return domain.ErrInvalidStage
		}

		prev := s.Stage
		now := time.Now().UTC()

		switch {
		case gate == domain.StagePendingSupervisor && action == domain.ActionApprove:
			s.SupervisorID = &actor.ID
			s.SupervisorApprovedAt = &now
		case gate == domain.StagePendingSupervisor && action == domain.ActionReject:
			if len(flaggedFields) > 0 {
				s.FlaggedFields = flaggedFields
			}
			if comments != "" {
				reason := comments
				s.FlagReason = &reason
			}
		case gate == domain.StagePendingManager && (action == domain.ActionApprove || action == domain.ActionUpload):
			s.ManagerID = &actor.ID
			s.ManagerApprovedAt = &now
			if action == domain.ActionUpload {
				s.UploadedAt = &now
			}
		}

		s.Stage = next
		if err := r.Submissions.SaveTransition(ctx, s); err != nil {
			return err
		}
		if err := r.ReviewLogs.Create(ctx, newLogEntry(s, actor, action, prev, next, comments)); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return nil, mapLookupErr(err)
	}

	res := &ReviewResult{Submission: subuc.ToDTO(snap)}
	if action == domain.ActionUpload {
		if perr := u.promote(ctx, snap); perr != nil {
			res.PromotionWarning = fmt.Errorf("%w: %v", ErrPromotionFailed, perr).Error()
		}
	}
	return res, nil
}

// Resubmit is the author's re-edit of a rejected submission: apply the edits,
// clear the previous cycle's reviewer flags, and return to the first gate.
// Auto-flags are never recomputed.
func (u *Usecase) Resubmit(ctx context.Context, submissionID string, actor domain.Actor, in EditInput) (*subuc.SubmissionDTO, error) {
	var snap *domain.Submission

	err := u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domain.Submission) error {
		if s.Stage != domain.StageRejected {
			return domain.ErrInvalidStage
		}
		if !domain.CanTransition(actor.Role, s.Stage, domain.ActionResubmit) || actor.ID != s.ScraperID {
			return domain.ErrUnauthorized
		}

		applyEdits(s, in)
		prev := s.Stage
		s.Stage = domain.StagePendingSupervisor
		s.FlaggedFields = nil
		s.FlagReason = nil

		if err := r.Submissions.SaveTransition(ctx, s); err != nil {
			return err
		}
		if err := r.ReviewLogs.Create(ctx, newLogEntry(s, actor, domain.ActionResubmit, prev, s.Stage, "")); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return subuc.ToDTO(snap), nil
}

// BulkManagerAction applies one manager action across many submissions, each
// item independent. A failed item never stops the rest; the caller must
// expect partial success.
func (u *Usecase) BulkManagerAction(ctx context.Context, submissionIDs []string, actor domain.Actor, action domain.Action, comments string) (*BulkResult, error) {
	if len(submissionIDs) == 0 {
		return nil, &domain.ValidationError{Field: "submission_ids", Message: "must not be empty"}
	}
	if action != domain.ActionApprove && action != domain.ActionUpload {
		return nil, &domain.ValidationError{Field: "action", Message: "must be approve or upload"}
	}
	if !domain.CanTransition(actor.Role, domain.StagePendingManager, action) {
		return nil, domain.ErrUnauthorized
	}

	out := &BulkResult{Items: make([]BulkItemResult, 0, len(submissionIDs))}
	for _, sid := range submissionIDs {
		item := BulkItemResult{SubmissionID: sid}
		if _, err := u.ReviewManager(ctx, sid, actor, action, comments); err != nil {
			item.Error = err.Error()
			out.FailureCount++
		} else {
			item.OK = true
			out.SuccessCount++
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// promote maps the uploaded submission into the inventory record shape and
// creates it there. Unset optionals become empty strings; the stock number is
// synthesized from the public submission id.
func (u *Usecase) promote(ctx context.Context, s *domain.Submission) error {
	v := &inventory.Vehicle{
		StockNumber: StockNumber(s.SubmissionID),
		Condition:   "used",

		Make:       s.Make,
		Model:      s.Model,
		Year:       s.Year,
		Trim:       deref(s.Trim),
		Kilometers: s.Kilometers,
		Price:      s.Price,

		Location:     deref(s.Location),
		Province:     deref(s.Province),
		Color:        deref(s.Color),
		Transmission: deref(s.Transmission),
		FuelType:     deref(s.FuelType),
		BodyType:     deref(s.BodyType),
		Drivetrain:   deref(s.Drivetrain),
		VIN:          deref(s.VIN),
		ImageURLs:    s.ImageURLs,
		Notes:        deref(s.Notes),
	}
	return u.inventory.Create(ctx, v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StockNumber derives the inventory stock number from a submission id.
func StockNumber(submissionID string) string {
	short := submissionID
	if len(short) > 8 {
		short = short[:8]
	}
	return "STK-" + strings.ToUpper(short)
}

func newLogEntry(s *domain.Submission, actor domain.Actor, action domain.Action, prev, next domain.Stage, comments string) *reviewlog.ReviewLog {
	return &reviewlog.ReviewLog{
		LogID:         id.NewID32(),
		SubmissionID:  s.ID,
		ReviewerID:    actor.ID,
		ReviewerRole:  string(actor.Role),
		Action:        string(action),
		PreviousStage: string(prev),
		NewStage:      string(next),
		Comments:      comments,
		FlaggedFields: append([]string(nil), s.FlaggedFields...),
	}
}

func applyEdits(s *domain.Submission, in EditInput) {
	if in.Make != nil {
		s.Make = *in.Make
	}
	if in.Model != nil {
		s.Model = *in.Model
	}
	if in.Year != nil {
		s.Year = *in.Year
	}
	if in.Kilometers != nil {
		s.Kilometers = *in.Kilometers
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.Trim != nil {
		s.Trim = in.Trim
	}
	if in.Location != nil {
		s.Location = in.Location
	}
	if in.Province != nil {
		s.Province = in.Province
	}
	if in.Color != nil {
		s.Color = in.Color
	}
	if in.Transmission != nil {
		s.Transmission = in.Transmission
	}
	if in.FuelType != nil {
		s.FuelType = in.FuelType
	}
	if in.BodyType != nil {
		s.BodyType = in.BodyType
	}
	if in.Drivetrain != nil {
		s.Drivetrain = in.Drivetrain
	}
	if in.VIN != nil {
		s.VIN = in.VIN
	}
	if in.ImageURLs != nil {
		s.ImageURLs = in.ImageURLs
	}
	if in.Notes != nil {
		s.Notes = in.Notes
	}
}

func mapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
