package domain

import "time"

// PeriodLock marks one calendar month of a company as closed to new postings.
// Absence of a lock row means the period is open. Reopening is an explicit,
// audited operation.
type PeriodLock struct {
	CompanyID  int64      `json:"companyID"`
	Year       int        `json:"year"`
	Month      int        `json:"month"` // 1-12
	IsClosed   bool       `json:"isClosed"`
	ClosedAt   *time.Time `json:"closedAt,omitempty"`
	ClosedBy   string     `json:"closedBy,omitempty"`
	ReopenedAt *time.Time `json:"reopenedAt,omitempty"`
	ReopenedBy string     `json:"reopenedBy,omitempty"`
}

// PeriodOf derives the (year, month) lock key from an accounting date, using
// the date's calendar year and month (no fiscal offset).
func PeriodOf(date time.Time) (int, int) {
	return date.Year(), int(date.Month())
}
