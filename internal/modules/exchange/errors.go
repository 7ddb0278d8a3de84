package exchange

import "errors"

var (
	ErrBadPayload   = errors.New("file has an unrecognized format or is empty")
	ErrUnknownKind  = errors.New("unknown export kind")
	ErrNotDone      = errors.New("act can only be generated for a completed period")
	ErrPeriodNotFound = errors.New("maintenance period not found")
)
