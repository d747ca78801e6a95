package celebration

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrDuplicateFolio = errors.New("folio already exists")
	ErrNotFound       = errors.New("celebration not found")
)
