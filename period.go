package main

import (
	"fmt"
	"time"
)

// Period is the date window the listing and overview cover.
type Period struct {
	start time.Time
	end   time.Time
}

// periodFor returns the month or year containing current.
func periodFor(current time.Time, periodType string) Period {
	switch periodType {
	case annualPeriodType:
		return Period{
			start: time.Date(current.Year(), 1, 1, 0, 0, 0, 0, current.Location()),
			end:   time.Date(current.Year()+1, 1, 1, 0, 0, 0, 0, current.Location()).Add(-time.Second),
		}
	default:
		// anything else falls back to the monthly window
		return Period{
			start: time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location()),
			end:   time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, current.Location()).Add(-time.Second),
		}
	}
}

func (p Period) String() string {
	if p.start.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s - %s", p.startDate(), p.endDate())
}

func (p Period) startDate() string {
	return p.start.Format("2006-01-02")
}

func (p Period) endDate() string {
	return p.end.Format("2006-01-02")
}
