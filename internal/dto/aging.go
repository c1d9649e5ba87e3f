package dto

import (
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingRow is one outstanding document in the pending-balances view.
type AgingRow struct {
	DocumentUUID string          `json:"documentUUID"`
	WorkDate     time.Time       `json:"workDate"`
	Total        decimal.Decimal `json:"total"`
	Applied      decimal.Decimal `json:"applied"`
	Pending      decimal.Decimal `json:"pending"`
}

// AgingTotals carries the rounded totals of the filtered rows.
type AgingTotals struct {
	CxC decimal.Decimal `json:"cxc"`
	CxP decimal.Decimal `json:"cxp"`
}

// AgingResponse is the pending-balances payload: receivables (cxc), payables
// (cxp) and their totals.
type AgingResponse struct {
	CxC     []AgingRow  `json:"cxc"`
	CxP     []AgingRow  `json:"cxp"`
	Totales AgingTotals `json:"totales"`
}

// ToAgingRows converts domain pending balances to response rows.
func ToAgingRows(balances []domain.PendingBalance) []AgingRow {
	rows := make([]AgingRow, len(balances))
	for i, b := range balances {
		rows[i] = AgingRow{
			DocumentUUID: b.DocumentUUID,
			WorkDate:     b.WorkDate,
			Total:        b.TotalAmount,
			Applied:      b.AppliedAmount,
			Pending:      b.PendingAmount,
		}
	}
	return rows
}

// ToAgingResponse converts a domain aging report to its response shape.
func ToAgingResponse(report *domain.AgingReport) AgingResponse {
	return AgingResponse{
		CxC: ToAgingRows(report.Receivables),
		CxP: ToAgingRows(report.Payables),
		Totales: AgingTotals{
			CxC: report.TotalReceivables,
			CxP: report.TotalPayables,
		},
	}
}
