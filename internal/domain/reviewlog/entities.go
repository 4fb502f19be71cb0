package reviewlog

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("review log not found")

// ReviewLog is one immutable audit record per successful transition. It is
// created by the workflow engine inside the same transaction as the stage
// update and is never modified or deleted afterwards.
type ReviewLog struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LogID string `gorm:"column:log_id;type:char(32);not null;uniqueIndex:ux_review_logs_log_id" json:"log_id"`
	// FK to submissions.id (numeric)
	SubmissionID  uint64    `gorm:"column:submission_id;not null;index" json:"-"`
	ReviewerID    string    `gorm:"column:reviewer_id;type:char(32);not null" json:"reviewer_id"`
	ReviewerRole  string    `gorm:"column:reviewer_role;size:16;not null" json:"reviewer_role"`
	Action        string    `gorm:"column:action;size:16;not null" json:"action"`
	PreviousStage string    `gorm:"column:previous_stage;size:32;not null" json:"previous_stage"`
	NewStage      string    `gorm:"column:new_stage;size:32;not null" json:"new_stage"`
	Comments      string    `gorm:"column:comments;type:text" json:"comments,omitempty"`
	FlaggedFields []string  `gorm:"column:flagged_fields;serializer:json;type:json" json:"flagged_fields,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReviewLog) TableName() string { return "review_logs" }
