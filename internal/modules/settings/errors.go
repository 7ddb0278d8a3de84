package settings

import "errors"

var (
	ErrBadViewMode     = errors.New("unknown maintenance view mode")
	ErrBadUpcomingDays = errors.New("upcoming days must be between 1 and 90")
	ErrBadFontSize     = errors.New("base font size must be between 10 and 24")
)
