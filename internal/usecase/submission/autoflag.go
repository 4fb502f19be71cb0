package submission

import "time"

// Reason codes surfaced to reviewers next to the flagged field.
const (
	ReasonNegativeValue = "negative_value"
	ReasonUnusuallyHigh = "unusually_high"
	ReasonTooLow        = "too_low"
	ReasonInvalidYear   = "invalid_year"
)

const (
	maxPlausibleKilometers = 500_000
	minPlausiblePrice      = 1_000
	maxPlausiblePrice      = 500_000
	minPlausibleYear       = 1990
)

// FieldValues are the raw numeric facts inspected at creation time.
type FieldValues struct {
	Kilometers int
	Price      float64
	Year       int
}

// AnalyzeFields screens a new submission for obvious anomalies. Pure and
// deterministic for a given now; the result is stored once at creation and
// never recomputed. Flags are hints for reviewers, they block nothing.
func AnalyzeFields(f FieldValues, now time.Time) map[string]string {
	flags := map[string]string{}

	if f.Kilometers < 0 {
		flags["kilometers"] = ReasonNegativeValue
	} else if f.Kilometers > maxPlausibleKilometers {
		flags["kilometers"] = ReasonUnusuallyHigh
	}

	if f.Price < minPlausiblePrice {
		flags["price"] = ReasonTooLow
	} else if f.Price > maxPlausiblePrice {
		flags["price"] = ReasonUnusuallyHigh
	}

	if f.Year < minPlausibleYear || f.Year > now.Year()+1 {
		flags["year"] = ReasonInvalidYear
	}

	if len(flags) == 0 {
		return nil
	}
	return flags
}
