package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentApplication applies part of a receipt or payment against a source
// document. Exactly one of ReceiptID (incoming money, reduces receivables) or
// PaymentID (outgoing money, reduces payables) is set. The aging engine reads
// these rows; creating them is a boundary concern.
type PaymentApplication struct {
	ApplicationID int64           `json:"applicationID"` // Primary Key
	DocumentUUID  string          `json:"documentUUID"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
	ReceiptID     *int64          `json:"receiptID,omitempty"`
	PaymentID     *int64          `json:"paymentID,omitempty"`
	AppliedAt     time.Time       `json:"appliedAt"`
}

// AppliesToReceivables reports whether the application belongs to the
// receivable (receipt) side. Applications with neither or both references are
// malformed and must be ignored by readers.
func (a *PaymentApplication) AppliesToReceivables() bool {
	return a.ReceiptID != nil && a.PaymentID == nil
}

// AppliesToPayables reports whether the application belongs to the payable
// (payment) side.
func (a *PaymentApplication) AppliesToPayables() bool {
	return a.PaymentID != nil && a.ReceiptID == nil
}
