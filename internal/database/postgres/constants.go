package postgres

// Row limits applied when a caller passes a non-positive limit
const (
	defaultListLimit = 10
)

// Error messages
const (
	ErrMsgFailedToBeginTx  = "failed to begin transaction"
	ErrMsgFailedToEncode   = "failed to encode json column"
	ErrMsgFailedToDecode   = "failed to decode json column"
	ErrMsgFailedToScanRows = "failed to scan rows"
)
