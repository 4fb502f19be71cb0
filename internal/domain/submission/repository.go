package submission

import "context"

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	// SaveTransition persists a stage change guarded by the submission's
	// version; a stale version yields ErrConflict and writes nothing.
	SaveTransition(ctx context.Context, s *Submission) error
	ListByScraperID(ctx context.Context, scraperID string, stage *Stage) ([]Submission, error)
	ListByStage(ctx context.Context, stage Stage) ([]Submission, error)
	ListAll(ctx context.Context, stage *Stage) ([]Submission, error)
	// CountByStage groups visible submissions by stage; an empty scraperID
	// means no scoping (reviewer view).
	CountByStage(ctx context.Context, scraperID string) (map[Stage]int64, error)
}
