package errs

import "errors"

var (
	ErrInvalidShareToken = errors.New("invalid share token")
	ErrGeneratingToken   = errors.New("error generating share token")
)
