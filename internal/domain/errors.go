package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Calendar errors
	ErrMsgEventNotFound     = "event not found"
	ErrMsgInvalidEventType  = "invalid event type"
	ErrMsgInvalidEventRange = "invalid upcoming window"

	// Market errors
	ErrMsgInvalidPriceUnit = "invalid price unit"
	ErrMsgInvalidCurrency  = "invalid currency"
	ErrMsgNegativePrice    = "price cannot be negative"

	// Crop errors
	ErrMsgCropNotFound = "crop not found"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Calendar errors
	ErrEventNotFound     = errors.New(ErrMsgEventNotFound)
	ErrInvalidEventType  = errors.New(ErrMsgInvalidEventType)
	ErrInvalidEventRange = errors.New(ErrMsgInvalidEventRange)

	// Market errors
	ErrInvalidPriceUnit = errors.New(ErrMsgInvalidPriceUnit)
	ErrInvalidCurrency  = errors.New(ErrMsgInvalidCurrency)
	ErrNegativePrice    = errors.New(ErrMsgNegativePrice)

	// Crop errors
	ErrCropNotFound = errors.New(ErrMsgCropNotFound)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
