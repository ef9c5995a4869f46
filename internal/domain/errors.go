package domain

import "errors"

// ErrMissingInput is returned when the ledger text or the spreadsheet rows are absent.
// No report is produced in that case.
var ErrMissingInput = errors.New("missing input")
