package reminder

import "time"

// Defaults used when the config leaves them unset
const (
	DefaultInterval = 15 * time.Minute
	DefaultLeadTime = 24 * time.Hour
)

// Discord embed
const (
	embedTitle      = "🌾 Crop calendar reminder"
	embedFooter     = "KrishiRaksha"
	embedColor      = 0x2ecc71 // Green
	embedDateLayout = "Mon, 02 Jan 2006 15:04 MST"
)

// Log messages
const (
	LogMsgReminderDue     = "Calendar reminder due"
	LogMsgReminderFailed  = "Failed to send calendar reminder"
	LogMsgReminderMarkErr = "Failed to mark event reminded"
	LogMsgReminderRun     = "Calendar reminders processed"
	LogMsgReminderBusy    = "Reminder run already in progress, skipping"
)
