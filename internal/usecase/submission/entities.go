package submission

import (
	"time"

	domain "dealership-ops-api/internal/domain/submission"
)

// CreateInput carries the raw field values collected by a scraper. Required
// numeric facts are pointers so "missing" and "zero" stay distinguishable.
type CreateInput struct {
	Make       string   `json:"make"`
	Model      string   `json:"model"`
	Year       *int     `json:"year"`
	Kilometers *int     `json:"kilometers"`
	Price      *float64 `json:"price"`

	Trim         *string  `json:"trim,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Province     *string  `json:"province,omitempty"`
	Color        *string  `json:"color,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	FuelType     *string  `json:"fuel_type,omitempty"`
	BodyType     *string  `json:"body_type,omitempty"`
	Drivetrain   *string  `json:"drivetrain,omitempty"`
	VIN          *string  `json:"vin,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

type SubmissionDTO struct {
	SubmissionID string `json:"submission_id"`
	ScraperID    string `json:"scraper_id"`

	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Kilometers int     `json:"kilometers"`
	Price      float64 `json:"price"`

	Trim         *string  `json:"trim,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Province     *string  `json:"province,omitempty"`
	Color        *string  `json:"color,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	FuelType     *string  `json:"fuel_type,omitempty"`
	BodyType     *string  `json:"body_type,omitempty"`
	Drivetrain   *string  `json:"drivetrain,omitempty"`
	VIN          *string  `json:"vin,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	Notes        *string  `json:"notes,omitempty"`

	Stage         string            `json:"stage"`
	AutoFlags     map[string]string `json:"auto_flags,omitempty"`
	FlaggedFields []string          `json:"flagged_fields,omitempty"`
	FlagReason    *string           `json:"flag_reason,omitempty"`

	SupervisorID         *string    `json:"supervisor_id,omitempty"`
	SupervisorApprovedAt *time.Time `json:"supervisor_approved_at,omitempty"`
	ManagerID            *string    `json:"manager_id,omitempty"`
	ManagerApprovedAt    *time.Time `json:"manager_approved_at,omitempty"`
	UploadedAt           *time.Time `json:"uploaded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewLogDTO struct {
	LogID         string    `json:"log_id"`
	ReviewerID    string    `json:"reviewer_id"`
	ReviewerRole  string    `json:"reviewer_role"`
	Action        string    `json:"action"`
	PreviousStage string    `json:"previous_stage"`
	NewStage      string    `json:"new_stage"`
	Comments      string    `json:"comments,omitempty"`
	FlaggedFields []string  `json:"flagged_fields,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubmissionWithHistoryDTO struct {
	Submission *SubmissionDTO `json:"submission"`
	ReviewLogs []ReviewLogDTO `json:"review_logs"`
}

type StatsDTO struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

// ToDTO maps the persisted entity to its transport shape.
func ToDTO(s *domain.Submission) *SubmissionDTO {
	return &SubmissionDTO{
		SubmissionID: s.SubmissionID,
		ScraperID:    s.ScraperID,
		Make:         s.Make,
		Model:        s.Model,
		Year:         s.Year,
		Kilometers:   s.Kilometers,
		Price:        s.Price,
		Trim:         s.Trim,
		Location:     s.Location,
		Province:     s.Province,
		Color:        s.Color,
		Transmission: s.Transmission,
		FuelType:     s.FuelType,
		BodyType:     s.BodyType,
		Drivetrain:   s.Drivetrain,
		VIN:          s.VIN,
		ImageURLs:    s.ImageURLs,
		Notes:        s.Notes,

		Stage:         string(s.Stage),
		AutoFlags:     s.AutoFlags,
		FlaggedFields: s.FlaggedFields,
		FlagReason:    s.FlagReason,

		SupervisorID:         s.SupervisorID,
		SupervisorApprovedAt: s.SupervisorApprovedAt,
		ManagerID:            s.ManagerID,
		ManagerApprovedAt:    s.ManagerApprovedAt,
		UploadedAt:           s.UploadedAt,

		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
