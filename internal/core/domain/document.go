package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType classifies a source document by the direction of the sale.
type OperationType string

const (
	OperationSale     OperationType = "SALE"
	OperationPurchase OperationType = "PURCHASE"
)

// PaymentTerms distinguishes immediate from deferred settlement.
type PaymentTerms string

const (
	TermsCash   PaymentTerms = "CASH"
	TermsCredit PaymentTerms = "CREDIT"
)

// DocumentStatus indicates the lifecycle state of a source document.
type DocumentStatus string

const (
	DocumentActive DocumentStatus = "ACTIVE"
	DocumentVoided DocumentStatus = "VOIDED"
)

// SourceDocument is a normalized financial document (invoice, retention, ...)
// supplied by ingestion. Once JournalEntryID is set the document is immutable
// except for voiding; voided documents are excluded from aging and cannot be
// posted.
type SourceDocument struct {
	UUID            string          `json:"uuid"`      // Primary Key (UUID)
	CompanyID       int64           `json:"companyID"` // FK -> companies.company_id
	OperationType   OperationType   `json:"operationType"`
	PaymentTerms    PaymentTerms    `json:"paymentTerms"`
	TotalAmount     decimal.Decimal `json:"totalAmount"` // fixed-point, 2 decimals
	WorkDate        time.Time       `json:"workDate"`    // accounting date, decides the period
	DebitAccountID  int64           `json:"debitAccountID"`
	CreditAccountID int64           `json:"creditAccountID"`
	Description     string          `json:"description"`
	Status          DocumentStatus  `json:"status"`
	JournalEntryID  *int64          `json:"journalEntryID"` // nil until posted
	AuditFields
}

// Posted reports whether the document already produced a journal entry.
func (d *SourceDocument) Posted() bool {
	return d.JournalEntryID != nil
}
