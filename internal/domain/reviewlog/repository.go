package reviewlog

import "context"

type Repository interface {
	// Append a new audit entry (entries are never updated or deleted)
	Create(ctx context.Context, l *ReviewLog) error

	// All entries for one submission, oldest first
	ListBySubmissionID(ctx context.Context, submissionID uint64) ([]ReviewLog, error)
}
