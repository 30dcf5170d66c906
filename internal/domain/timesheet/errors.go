package timesheet

import "errors"

var (
	ErrRecordNotFound = errors.New("work record not found")
	ErrRecordExists   = errors.New("work record already exists for this date")
	ErrMissingDate    = errors.New("work record has no date")
)
