package dto

import "github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"

// RowErrorDetail describes one rejected CSV row.
type RowErrorDetail struct {
	Row     int    `json:"row"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// BatchImportResponse is returned by the CSV upload endpoint. Imported is
// zero whenever Errors is non-empty: a batch with any invalid row persists
// nothing.
type BatchImportResponse struct {
	Message  string           `json:"message"`
	Imported int              `json:"imported"`
	Errors   []RowErrorDetail `json:"errors,omitempty"`
}

// ToBatchImportResponse converts a domain.BatchResult to its response DTO.
func ToBatchImportResponse(result *domain.BatchResult) BatchImportResponse {
	if !result.Rejected() {
		return BatchImportResponse{
			Message:  "CSV data uploaded successfully",
			Imported: result.Imported,
		}
	}

	errs := make([]RowErrorDetail, len(result.Errors))
	for i, rowErr := range result.Errors {
		errs[i] = RowErrorDetail{
			Row:     rowErr.Row,
			Reason:  string(rowErr.Reason),
			Message: rowErr.String(),
		}
	}
	return BatchImportResponse{
		Message: "one or more rows failed validation",
		Errors:  errs,
	}
}
