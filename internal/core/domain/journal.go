package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	EntryActive EntryStatus = "ACTIVE"
	EntryVoided EntryStatus = "VOIDED"
)

// JournalEntry is a balanced set of debit/credit lines recorded on a date
// under one per-company sequence number (the correlativo). SequenceNumber is
// unique per company, strictly increasing, and gap-free across committed
// entries; an entry is never re-sequenced.
type JournalEntry struct {
	EntryID        int64       `json:"entryID"`   // Primary Key
	CompanyID      int64       `json:"companyID"` // FK -> companies.company_id
	SequenceNumber int64       `json:"sequenceNumber"`
	BookTypeID     int64       `json:"bookTypeID"`
	EntryDate      time.Time   `json:"entryDate"`
	Description    string      `json:"description"`
	Status         EntryStatus `json:"status"`
	Lines          []JournalLine `json:"lines,omitempty"` // usually loaded separately
	AuditFields
}

// JournalLine is one debit or credit row within a journal entry. Exactly one
// of DebitAmount/CreditAmount is non-zero in the two-line case; both are
// always non-negative. A line belongs to exactly one entry.
type JournalLine struct {
	LineID       int64           `json:"lineID"` // Primary Key
	EntryID      int64           `json:"entryID"`
	AccountID    int64           `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Reference    string          `json:"reference,omitempty"`
}

// Statutory book identifiers used when classifying entries.
const (
	BookTypeSales     int64 = 1
	BookTypePurchases int64 = 2
)

// BookTypeFor maps a document's operation type to the statutory book its
// entry is recorded in.
func BookTypeFor(op OperationType) int64 {
	if op == OperationPurchase {
		return BookTypePurchases
	}
	return BookTypeSales
}

// PostedDocument is the per-document outcome of a successful posting.
type PostedDocument struct {
	DocumentUUID   string    `json:"documentUUID"`
	JournalEntryID int64     `json:"journalEntryID"`
	Correlativo    int64     `json:"correlativo"`
	EntryDate      time.Time `json:"entryDate"`
}
