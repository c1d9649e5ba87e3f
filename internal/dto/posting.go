package dto

import (
	"github.com/contasys/contasys-backend/internal/core/domain"
)

// PostDocumentsRequest is the batch posting payload.
type PostDocumentsRequest struct {
	DocumentUUIDs []string `json:"documentUUIDs" binding:"required,min=1,dive,uuid"`
}

// PostedItem reports one successfully posted document.
type PostedItem struct {
	UUID           string `json:"uuid"`
	JournalEntryID int64  `json:"journalEntryID"`
	Correlativo    int64  `json:"correlativo"`
}

// FailedItem reports one document that could not be posted, with the taxonomy
// code and a human-readable reason.
type FailedItem struct {
	UUID    string `json:"uuid"`
	Code    string `json:"errorCode"`
	Message string `json:"message"`
}

// PostDocumentsResponse aggregates the per-document outcomes of a batch. One
// bad document never blocks the rest; callers inspect both lists.
type PostDocumentsResponse struct {
	Posted []PostedItem `json:"posted"`
	Failed []FailedItem `json:"failed"`
}

// AllFailed reports whether not a single document posted.
func (r *PostDocumentsResponse) AllFailed() bool {
	return len(r.Posted) == 0 && len(r.Failed) > 0
}

// Partial reports whether the batch mixed successes and failures.
func (r *PostDocumentsResponse) Partial() bool {
	return len(r.Posted) > 0 && len(r.Failed) > 0
}

// ToPostedItem converts a domain posting outcome to its response shape.
func ToPostedItem(p *domain.PostedDocument) PostedItem {
	return PostedItem{
		UUID:           p.DocumentUUID,
		JournalEntryID: p.JournalEntryID,
		Correlativo:    p.Correlativo,
	}
}
