package domain

// BatchResult is the outcome of a CSV batch import. A batch is
// all-or-nothing at validation time: Errors non-empty means nothing was
// persisted and Imported is zero.
type BatchResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

// Rejected reports whether the batch failed validation.
func (r *BatchResult) Rejected() bool {
	return len(r.Errors) > 0
}
