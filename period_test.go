package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestPeriodFor(t *testing.T) {
	tests := []struct {
		name        string
		current     time.Time
		periodType  string
		expectStart time.Time
		expectEnd   time.Time
	}{
		{
			name:        "monthly period - mid month",
			current:     time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC),
			periodType:  monthlyPeriodType,
			expectStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:        "monthly period - start of month",
			current:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			periodType:  monthlyPeriodType,
			expectStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:        "annual period",
			current:     time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
			periodType:  annualPeriodType,
			expectStart: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:        "unknown type defaults to monthly",
			current:     time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC),
			periodType:  "invalid",
			expectStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodFor(tt.current, tt.periodType)

			be.Equal(t, tt.expectStart, p.start)
			be.Equal(t, tt.expectEnd, p.end)
		})
	}
}

func TestPeriodString(t *testing.T) {
	p := Period{
		start: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	be.Equal(t, "2023-12-01 - 2023-12-31", p.String())
	be.Equal(t, "2023-12-01", p.startDate())
	be.Equal(t, "2023-12-31", p.endDate())
}

func TestPeriodStringZero(t *testing.T) {
	be.Equal(t, "", Period{}.String())
}
