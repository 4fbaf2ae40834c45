package calendar

// Upcoming event window in days
const (
	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 365
)

// MaxNotesLength is the longest accepted notes field, in characters
const MaxNotesLength = 500
