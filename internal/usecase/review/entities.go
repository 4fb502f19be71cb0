package review

import (
	subuc "dealership-ops-api/internal/usecase/submission"
)

// ReviewResult is the outcome of one transition. PromotionWarning is set only
// when an upload succeeded as a review decision but the inventory write
// failed; the stage change and audit entry stand regardless.
type ReviewResult struct {
	Submission       *subuc.SubmissionDTO `json:"submission"`
	PromotionWarning string               `json:"promotion_warning,omitempty"`
}

// EditInput is the author's re-edit of a rejected submission. Nil fields are
// left untouched.
type EditInput struct {
	Make       *string  `json:"make,omitempty"`
	Model      *string  `json:"model,omitempty"`
	Year       *int     `json:"year,omitempty"`
	Kilometers *int     `json:"kilometers,omitempty"`
	Price      *float64 `json:"price,omitempty"`

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

type BulkItemResult struct {
	SubmissionID string `json:"submission_id"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
}

// BulkResult aggregates a best-effort batch: items are independent, the batch
// never aborts, and SuccessCount+FailureCount always equals the input size.
type BulkResult struct {
	SuccessCount int              `json:"success_count"`
	FailureCount int              `json:"failure_count"`
	Items        []BulkItemResult `json:"items"`
}
