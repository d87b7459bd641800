package domain

import (
	"fmt"
	"time"
)

// Period identifies one calendar month. It is the unique key for monthly
// plans, capacity facts and tracked hours.
type Period struct {
	Year  int
	Month int // 1-12
}

// PeriodOf returns the Period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// ParsePeriod parses the canonical "YYYY-MM" form produced by String.
func ParsePeriod(s string) (Period, error) {
	var p Period
	if _, err := fmt.Sscanf(s, "%d-%d", &p.Year, &p.Month); err != nil {
		return Period{}, fmt.Errorf("period %q is not in YYYY-MM form", s)
	}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Next returns the following calendar month, rolling the year over at December.
func (p Period) Next() Period {
	if p.Month >= 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p is chronologically before other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Validate checks that the month is in 1-12 and the year is plausible.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month %d out of range 1-12", p.Month)
	}
	if p.Year < 2000 || p.Year > 2200 {
		return fmt.Errorf("year %d out of range", p.Year)
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// PeriodRange is an inclusive span of months within one query.
type PeriodRange struct {
	From Period
	To   Period
}

// Validate checks both endpoints and their ordering.
func (r PeriodRange) Validate() error {
	if err := r.From.Validate(); err != nil {
		return fmt.Errorf("range start: %w", err)
	}
	if err := r.To.Validate(); err != nil {
		return fmt.Errorf("range end: %w", err)
	}
	if r.To.Before(r.From) {
		return fmt.Errorf("range end %s precedes start %s", r.To, r.From)
	}
	return nil
}

// Periods expands the range into its ordered list of months.
func (r PeriodRange) Periods() []Period {
	var out []Period
	for p := r.From; !r.To.Before(p); p = p.Next() {
		out = append(out, p)
	}
	return out
}

// BusinessDays counts Monday-Friday days in the period's month. Used as the
// default capacity basis when no explicit capacity fact exists.
func (p Period) BusinessDays() int {
	first := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	days := 0
	for d := first; int(d.Month()) == p.Month; d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
