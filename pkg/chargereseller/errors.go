package chargereseller

import "errors"

// Errors returned by the client. Callers match with errors.Is to translate
// into their own taxonomy.
var (
	ErrTimeout         = errors.New("easycharge: request timed out")
	ErrUnavailable     = errors.New("easycharge: service unreachable")
	ErrBadStatus       = errors.New("easycharge: unexpected response status")
	ErrInvalidResponse = errors.New("easycharge: invalid response body")
)
