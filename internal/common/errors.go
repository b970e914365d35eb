// Package common defines shared constants and sentinel errors used across
// client and server layers of slugmart. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. The message is part of the public API contract.
	ErrInvalidCredentials = errors.New("Invalid Credentials") //nolint:staticcheck // client-visible text

	// Auth errors.
	ErrTokenMissing = errors.New("not authenticated")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Account errors.
	ErrAccountNotFound = errors.New("account with given id or email does not exist")
	ErrDuplicateEmail  = errors.New("account with given email already exists")

	// Listing / message / order errors.
	ErrListingNotFound = errors.New("listing with given id does not exist")
	ErrMessageNotFound = errors.New("message not found")
	ErrOrderNotFound   = errors.New("order with given id does not exist")

	// Validation errors (client input).
	ErrInvalidFolder      = errors.New("invalid folder specified")
	ErrUnsupportedContent = errors.New("unsupported content type")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid shipping status")
)
