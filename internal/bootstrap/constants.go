package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting KrishiRaksha"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Crop Catalog
// =============================================================================

const (
	LogMsgCropCatalogLoaded     = "Crop catalog loaded"
	ErrMsgFailedLoadCropCatalog = "failed to load crop catalog"
)

// =============================================================================
// Reminders
// =============================================================================

const (
	LogMsgRemindersDiscord  = "Calendar reminders will be posted to Discord"
	LogMsgRemindersLog      = "Calendar reminders will be written to the log"
	LogMsgRemindersStarted  = "Reminder scheduler started"
	ErrMsgFailedOpenDiscord = "failed to open discord session"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgShuttingDownReminders = "Stopping reminder scheduler..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgDiscordCloseFailed    = "Discord session close failed"
)
