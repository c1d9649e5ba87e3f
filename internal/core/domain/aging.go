package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingBalance is one outstanding-document row of the aging view.
type PendingBalance struct {
	DocumentUUID  string          `json:"documentUUID"`
	OperationType OperationType   `json:"operationType"`
	WorkDate      time.Time       `json:"workDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AppliedAmount decimal.Decimal `json:"appliedAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// AgingReport holds the receivable and payable sides plus their totals.
// Totals are the rounded sums of the filtered rows' pending values.
type AgingReport struct {
	Receivables      []PendingBalance `json:"receivables"`
	Payables         []PendingBalance `json:"payables"`
	TotalReceivables decimal.Decimal  `json:"totalReceivables"`
	TotalPayables    decimal.Decimal  `json:"totalPayables"`
}
