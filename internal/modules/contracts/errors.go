package contracts

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrContractNumberTaken = errors.New("contract number already exists")
	ErrPeriodNotFound      = errors.New("maintenance period not found")
	ErrEquipmentNotFound   = errors.New("equipment not found in contract")
	ErrReportNotFound      = errors.New("service report not found")
	ErrEngineerNotFound    = errors.New("engineer not found")
	ErrDatesRequired       = errors.New("both start and end dates are required")
	ErrDatesOutOfOrder     = errors.New("start date is after end date")
	ErrEngineersRequired   = errors.New("at least one engineer is required")
	ErrLastPeriod          = errors.New("contract must keep at least one period")
	ErrArchiveActive       = errors.New("active contract cannot be archived")
)
