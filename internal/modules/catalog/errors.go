package catalog

import "errors"

var (
	ErrNameRequired = errors.New("model name is required")
	ErrNameTaken    = errors.New("model with this name already exists")
)
