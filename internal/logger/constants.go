package logger

// ContextKeyRequestID stores the request id in a context; it is also the log attribute name
const ContextKeyRequestID = "request_id"

// Accepted LOG_LEVEL values ("warning" is an alias of "warn")
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for the base attributes
const (
	DefaultServiceName    = "krishiraksha"
	DefaultVersion        = "dev"
	ProductionVersion     = "1.0.0"
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Base attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
)
