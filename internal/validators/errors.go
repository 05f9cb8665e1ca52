package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID                = errors.New("empty identifier")
	ErrInvalidID              = errors.New("identifier must be a single path segment")
	ErrInvalidIntegrationType = errors.New(`integration type must be "source" or "destination"`)
)
