package domain

import "errors"

var (
	ErrDrawDisabled     = errors.New("draws are disabled: catalog is empty")
	ErrInvalidPreset    = errors.New("count is not an allowed draw preset")
	ErrCatalogMalformed = errors.New("catalog is malformed")
	ErrCatalogFetch     = errors.New("catalog fetch failed")
)
