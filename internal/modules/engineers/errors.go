package engineers

import "errors"

var (
	ErrNameRequired = errors.New("engineer name is required")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("phone must match +380XXXXXXXXX")
	ErrEmailTaken   = errors.New("engineer with this email already exists")
)
