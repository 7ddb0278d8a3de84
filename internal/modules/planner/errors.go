package planner

import "errors"

var (
	ErrNoPeriods      = errors.New("at least one period is required")
	ErrBadMonthRef    = errors.New("monthRef must be in YYYY-MM format")
	ErrNoUsableOutput = errors.New("oracle returned no usable suggestions")
)
