package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateFetch indicates that the external exchange-rate provider could not
// be reached or returned an unusable response. It aborts the whole request;
// there is no stale-snapshot fallback.
var ErrRateFetch = errors.New("exchange rate fetch failed")
