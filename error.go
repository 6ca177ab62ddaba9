package junction

import "errors"

var (
	ErrBadConfig        = errors.New("bad config")
	ErrMissingData      = errors.New("missing data")
	ErrNotFound         = errors.New("not found")
	ErrNotValid         = errors.New("invalid")
	ErrTooManyRedirects = errors.New("too many redirects")
)
