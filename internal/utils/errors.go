package utils

import "errors"

// Common application errors used across services.
var (
	// Input validation
	ErrAmountOutOfRange  = errors.New("AMOUNT_OUT_OF_RANGE")
	ErrInvalidPhone      = errors.New("INVALID_PHONE")
	ErrInvalidChargeType = errors.New("INVALID_CHARGE_TYPE")
	ErrOperatorNotFound  = errors.New("OPERATOR_NOT_FOUND")

	// Server configuration
	ErrMissingWebServiceID = errors.New("MISSING_WEBSERVICE_ID")

	// Upstream reseller API
	ErrUpstreamTimeout         = errors.New("UPSTREAM_TIMEOUT")
	ErrUpstreamUnavailable     = errors.New("UPSTREAM_UNAVAILABLE")
	ErrUpstreamStatus          = errors.New("UPSTREAM_BAD_STATUS")
	ErrInvalidUpstreamResponse = errors.New("INVALID_UPSTREAM_RESPONSE")
)
