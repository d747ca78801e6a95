package intention

import "errors"

var ErrValidation = errors.New("validation error")
