package domain

import "errors"

// Sentinel errors shared across services and delivery.
var (
	ErrNotFound             = errors.New("not found")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrFormClosed           = errors.New("event form is not open")
)
