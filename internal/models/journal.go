package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors the journal_entries table.
type JournalEntry struct {
	EntryID        int64
	CompanyID      int64
	SequenceNumber int64
	BookTypeID     int64
	EntryDate      time.Time
	Description    string
	Status         string
	CreatedAt      time.Time
	CreatedBy      string
	LastUpdatedAt  time.Time
	LastUpdatedBy  string
}

// JournalLine mirrors the journal_lines table.
type JournalLine struct {
	LineID       int64
	EntryID      int64
	AccountID    int64
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	Reference    string
}
