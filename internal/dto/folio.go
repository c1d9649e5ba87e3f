package dto

import (
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// AllocateFoliosRequest consumes folios from a book's counter. The field name
// mirrors the boundary contract of the folio endpoints.
type AllocateFoliosRequest struct {
	FoliosUsed int64 `json:"folios_used" binding:"required,gt=0"`
}

// TopUpFoliosRequest replenishes a book's counter.
type TopUpFoliosRequest struct {
	Count int64 `json:"count" binding:"required,gt=0"`
}

// FolioCounterResponse is the updated counter row returned by folio
// operations.
type FolioCounterResponse struct {
	CounterID      int64     `json:"counterID"`
	CompanyID      int64     `json:"companyID"`
	BookID         int64     `json:"bookID"`
	AllocatedCount int64     `json:"allocatedCount"`
	AvailableCount int64     `json:"availableCount"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToFolioCounterResponse converts a domain counter to its response shape.
func ToFolioCounterResponse(c *domain.FolioCounter) FolioCounterResponse {
	return FolioCounterResponse{
		CounterID:      c.CounterID,
		CompanyID:      c.CompanyID,
		BookID:         c.BookID,
		AllocatedCount: c.AllocatedCount,
		AvailableCount: c.AvailableCount,
		LastUpdatedAt:  c.LastUpdatedAt,
	}
}
