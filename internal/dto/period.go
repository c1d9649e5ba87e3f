package dto

import (
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// PeriodResponse describes the lock state of one accounting month.
type PeriodResponse struct {
	CompanyID  int64      `json:"companyID"`
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	IsClosed   bool       `json:"isClosed"`
	ClosedAt   *time.Time `json:"closedAt,omitempty"`
	ClosedBy   string     `json:"closedBy,omitempty"`
	ReopenedAt *time.Time `json:"reopenedAt,omitempty"`
	ReopenedBy string     `json:"reopenedBy,omitempty"`
}

// ToPeriodResponse converts a domain period lock to its response shape.
func ToPeriodResponse(p *domain.PeriodLock) PeriodResponse {
	return PeriodResponse{
		CompanyID:  p.CompanyID,
		Year:       p.Year,
		Month:      p.Month,
		IsClosed:   p.IsClosed,
		ClosedAt:   p.ClosedAt,
		ClosedBy:   p.ClosedBy,
		ReopenedAt: p.ReopenedAt,
		ReopenedBy: p.ReopenedBy,
	}
}
