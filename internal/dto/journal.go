package dto

import (
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse is one debit or credit row of an entry.
type JournalLineResponse struct {
	LineID       int64           `json:"lineID"`
	AccountID    int64           `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Reference    string          `json:"reference,omitempty"`
}

// JournalEntryResponse is a journal entry with its lines.
type JournalEntryResponse struct {
	EntryID        int64                 `json:"entryID"`
	CompanyID      int64                 `json:"companyID"`
	SequenceNumber int64                 `json:"sequenceNumber"`
	BookTypeID     int64                 `json:"bookTypeID"`
	EntryDate      time.Time             `json:"entryDate"`
	Description    string                `json:"description"`
	Status         string                `json:"status"`
	Lines          []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalEntryResponse converts a domain entry (with lines) to its response
// shape.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:       l.LineID,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Reference:    l.Reference,
		}
	}
	return JournalEntryResponse{
		EntryID:        e.EntryID,
		CompanyID:      e.CompanyID,
		SequenceNumber: e.SequenceNumber,
		BookTypeID:     e.BookTypeID,
		EntryDate:      e.EntryDate,
		Description:    e.Description,
		Status:         string(e.Status),
		Lines:          lines,
	}
}
