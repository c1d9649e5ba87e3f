package domain

// FolioCounter tracks folio consumption for one statutory book of a company.
// AvailableCount never goes below zero: every allocation decrements it and
// increments AllocatedCount by the same amount in a single atomic update.
type FolioCounter struct {
	CounterID      int64 `json:"counterID"` // Primary Key
	CompanyID      int64 `json:"companyID"`
	BookID         int64 `json:"bookID"`
	AllocatedCount int64 `json:"allocatedCount"` // cumulative folios consumed
	AvailableCount int64 `json:"availableCount"` // remaining capacity
	AuditFields
}
