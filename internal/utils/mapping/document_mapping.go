package mapping

import (
	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/contasys/contasys-backend/internal/models"
)

// ToDomainDocument converts a database document row to its domain shape.
func ToDomainDocument(m models.SourceDocument) domain.SourceDocument {
	return domain.SourceDocument{
		UUID:            m.UUID,
		CompanyID:       m.CompanyID,
		OperationType:   domain.OperationType(m.OperationType),
		PaymentTerms:    domain.PaymentTerms(m.PaymentTerms),
		TotalAmount:     m.TotalAmount,
		WorkDate:        m.WorkDate,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Description:     m.Description,
		Status:          domain.DocumentStatus(m.Status),
		JournalEntryID:  m.JournalEntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainDocumentSlice converts a slice of document rows.
func ToDomainDocumentSlice(ms []models.SourceDocument) []domain.SourceDocument {
	out := make([]domain.SourceDocument, len(ms))
	for i, m := range ms {
		out[i] = ToDomainDocument(m)
	}
	return out
}
