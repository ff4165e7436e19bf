package shortener

import "errors"

// Validation errors, checked in this order by Service.Shorten.
var (
	ErrURLRequired       = errors.New("url is required")
	ErrInvalidURL        = errors.New("invalid url format")
	ErrInvalidCodeFormat = errors.New("invalid custom code format")
	ErrCodeTaken         = errors.New("custom code already taken")
)

var (
	ErrCodeRequired       = errors.New("short code is required")
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique short code")
)
