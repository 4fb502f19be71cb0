package submission

import (
	"reflect"
	"testing"
	"time"
)

var flagNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestAnalyzeFields_CleanRecord(t *testing.T) {
	got := AnalyzeFields(FieldValues{Kilometers: 85_000, Price: 24_500, Year: 2021}, flagNow)
	if got != nil {
		t.Fatalf("expected no flags, got %v", got)
	}
}

func TestAnalyzeFields_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   FieldValues
		want map[string]string
	}{
		{
			name: "negative odometer",
			in:   FieldValues{Kilometers: -5, Price: 20_000, Year: 2020},
			want: map[string]string{"kilometers": ReasonNegativeValue},
		},
		{
			name: "unusually high odometer",
			in:   FieldValues{Kilometers: 600_000, Price: 50_000, Year: 2022},
			want: map[string]string{"kilometers": ReasonUnusuallyHigh},
		},
		{
			name: "price too low",
			in:   FieldValues{Kilometers: 50_000, Price: 999.99, Year: 2020},
			want: map[string]string{"price": ReasonTooLow},
		},
		{
			name: "price unusually high",
			in:   FieldValues{Kilometers: 50_000, Price: 500_001, Year: 2020},
			want: map[string]string{"price": ReasonUnusuallyHigh},
		},
		{
			name: "year before 1990",
			in:   FieldValues{Kilometers: 50_000, Price: 20_000, Year: 1989},
			want: map[string]string{"year": ReasonInvalidYear},
		},
		{
			name: "year too far in the future",
			in:   FieldValues{Kilometers: 50_000, Price: 20_000, Year: 2027},
			want: map[string]string{"year": ReasonInvalidYear},
		},
		{
			name: "next model year is fine",
			in:   FieldValues{Kilometers: 10, Price: 45_000, Year: 2026},
			want: nil,
		},
		{
			name: "boundary values are clean",
			in:   FieldValues{Kilometers: 500_000, Price: 1_000, Year: 1990},
			want: nil,
		},
		{
			name: "all rules fire together",
			in:   FieldValues{Kilometers: -1, Price: 0, Year: 1900},
			want: map[string]string{
				"kilometers": ReasonNegativeValue,
				"price":      ReasonTooLow,
				"year":       ReasonInvalidYear,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeFields(tc.in, flagNow)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("AnalyzeFields = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAnalyzeFields_Deterministic(t *testing.T) {
	in := FieldValues{Kilometers: 600_000, Price: 120, Year: 1985}
	a := AnalyzeFields(in, flagNow)
	b := AnalyzeFields(in, flagNow)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("analyzer not deterministic: %v vs %v", a, b)
	}
}
