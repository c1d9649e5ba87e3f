package mapping

import (
	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/contasys/contasys-backend/internal/models"
)

// ToDomainEntry converts a database entry row to its domain shape, without
// lines.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:        m.EntryID,
		CompanyID:      m.CompanyID,
		SequenceNumber: m.SequenceNumber,
		BookTypeID:     m.BookTypeID,
		EntryDate:      m.EntryDate,
		Description:    m.Description,
		Status:         domain.EntryStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainLine converts a database line row to its domain shape.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		Reference:    m.Reference,
	}
}

// ToDomainLineSlice converts a slice of line rows.
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLine(m)
	}
	return out
}
