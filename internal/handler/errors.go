package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s parameter"
	ErrMsgMissingPathParam  = "Missing %s"

	// Harvest error messages
	ErrMsgCalculateFailed  = "Failed to calculate harvest plan"
	ErrMsgGetHistoryFailed = "Failed to retrieve harvest history"

	// Calendar error messages
	ErrMsgCreateEventFailed = "Failed to create event"
	ErrMsgGetEventsFailed   = "Failed to retrieve events"

	// Market error messages
	ErrMsgRecordPriceFailed = "Failed to record market price"
	ErrMsgGetPricesFailed   = "Failed to retrieve market prices"
)

// Success messages for API responses
const (
	MsgEventDeletedSuccess  = "Event deleted successfully"
	MsgPriceRecordedSuccess = "Market price recorded successfully"
)
