package bom

import "errors"

// Validation errors returned by Store operations. All are recoverable,
// user-facing errors — callers match them with errors.Is and surface a
// message without losing any other application state.
var (
	ErrDuplicateCategory     = errors.New("category already exists")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicatePartID       = errors.New("part id already in use")
	ErrInvalidPart           = errors.New("invalid part")
	ErrPartNotFound          = errors.New("part not found")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidVendor         = errors.New("invalid vendor")
	ErrVendorIndexOutOfRange = errors.New("vendor index out of range")
)
