package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceDocument mirrors the source_documents table.
type SourceDocument struct {
	UUID            string
	CompanyID       int64
	OperationType   string
	PaymentTerms    string
	TotalAmount     decimal.Decimal
	WorkDate        time.Time
	DebitAccountID  int64
	CreditAccountID int64
	Description     string
	Status          string
	JournalEntryID  *int64
	CreatedAt       time.Time
	CreatedBy       string
	LastUpdatedAt   time.Time
	LastUpdatedBy   string
}
