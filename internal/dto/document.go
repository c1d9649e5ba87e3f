package dto

import (
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentResponse is the public shape of a source document.
type DocumentResponse struct {
	UUID           string          `json:"uuid"`
	CompanyID      int64           `json:"companyID"`
	OperationType  string          `json:"operationType"`
	PaymentTerms   string          `json:"paymentTerms"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	WorkDate       time.Time       `json:"workDate"`
	Status         string          `json:"status"`
	JournalEntryID *int64          `json:"journalEntryID,omitempty"`
}

// ToDocumentResponse converts a domain document to its response shape.
func ToDocumentResponse(d *domain.SourceDocument) DocumentResponse {
	return DocumentResponse{
		UUID:           d.UUID,
		CompanyID:      d.CompanyID,
		OperationType:  string(d.OperationType),
		PaymentTerms:   string(d.PaymentTerms),
		TotalAmount:    d.TotalAmount,
		WorkDate:       d.WorkDate,
		Status:         string(d.Status),
		JournalEntryID: d.JournalEntryID,
	}
}
