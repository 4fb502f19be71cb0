package submission

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Stage string

const (
	StagePendingSupervisor Stage = "pending_supervisor"
	StagePendingManager    Stage = "pending_manager"
	StageApproved          Stage = "approved"
	StageRejected          Stage = "rejected"
	StageUploaded          Stage = "uploaded"
)

type Role string

const (
	RoleScraper    Role = "scraper"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
)

type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionUpload   Action = "upload"
	ActionSendBack Action = "send_back"
	ActionResubmit Action = "resubmit"
)

// Actor is the already-resolved identity making a core call. Identity and
// session handling live outside this core; nothing here reads ambient state.
type Actor struct {
	ID   string
	Role Role
}

var (
	ErrNotFound     = errors.New("submission not found")
	ErrInvalidStage = errors.New("action does not match current stage")
	ErrUnauthorized = errors.New("role not permitted for this action")
	ErrConflict     = errors.New("submission was modified concurrently")
)

// ValidationError reports malformed or missing input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

type Submission struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	SubmissionID string `gorm:"size:32;uniqueIndex:ux_submissions_submission_id_active" json:"submission_id"`
	ScraperID    string `gorm:"size:32;index:idx_submissions_scraper_stage" json:"scraper_id"`

	Make       string  `gorm:"size:64" json:"make"`
	Model      string  `gorm:"size:64" json:"model"`
	Year       int     `json:"year"`
	Kilometers int     `json:"kilometers"`
	Price      float64 `gorm:"type:decimal(12,2)" json:"price"`

	Trim         *string  `gorm:"size:64" json:"trim,omitempty"`
	Location     *string  `gorm:"size:128" json:"location,omitempty"`
	Province     *string  `gorm:"size:64" json:"province,omitempty"`
	Color        *string  `gorm:"size:32" json:"color,omitempty"`
	Transmission *string  `gorm:"size:32" json:"transmission,omitempty"`
	FuelType     *string  `gorm:"size:32" json:"fuel_type,omitempty"`
	BodyType     *string  `gorm:"size:32" json:"body_type,omitempty"`
	Drivetrain   *string  `gorm:"size:32" json:"drivetrain,omitempty"`
	VIN          *string  `gorm:"size:32" json:"vin,omitempty"`
	ImageURLs    []string `gorm:"serializer:json;type:json" json:"image_urls,omitempty"`
	Notes        *string  `gorm:"type:text" json:"notes,omitempty"`

	Stage Stage `gorm:"type:enum('pending_supervisor','pending_manager','approved','rejected','uploaded');default:'pending_supervisor';index:idx_submissions_scraper_stage" json:"stage"`
	// AutoFlags is written once at creation and never mutated afterwards.
	AutoFlags     map[string]string `gorm:"serializer:json;type:json" json:"auto_flags,omitempty"`
	FlaggedFields []string          `gorm:"serializer:json;type:json" json:"flagged_fields,omitempty"`
	FlagReason    *string           `gorm:"type:text" json:"flag_reason,omitempty"`

	SupervisorID         *string    `gorm:"size:32" json:"supervisor_id,omitempty"`
	SupervisorApprovedAt *time.Time `json:"supervisor_approved_at,omitempty"`
	ManagerID            *string    `gorm:"size:32" json:"manager_id,omitempty"`
	ManagerApprovedAt    *time.Time `json:"manager_approved_at,omitempty"`
	UploadedAt           *time.Time `json:"uploaded_at,omitempty"`

	// Version makes the read-validate-write race in concurrent reviews
	// detectable: SaveTransition bumps it and fails on a stale value.
	Version   uint64         `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Submission) TableName() string { return "submissions" }
