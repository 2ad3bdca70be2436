package ical

import "errors"

var (
	ErrIDNotSet              = errors.New("event id not set")
	ErrSummaryNotSet         = errors.New("summary not set")
	ErrStartDateInvalid      = errors.New("start date not set")
	ErrStartDateAfterEndDate = errors.New("end date is not after start date")
)
