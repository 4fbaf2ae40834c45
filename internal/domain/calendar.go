package domain

import "time"

// EventType classifies a crop calendar activity
type EventType string

const (
	EventTypePlanting   EventType = "planting"
	EventTypeIrrigation EventType = "irrigation"
	EventTypeFertilizer EventType = "fertilizer"
	EventTypePesticide  EventType = "pesticide"
	EventTypeHarvest    EventType = "harvest"
	EventTypeOther      EventType = "other"
)

// ValidEventTypes lists every accepted event type
var ValidEventTypes = []EventType{
	EventTypePlanting,
	EventTypeIrrigation,
	EventTypeFertilizer,
	EventTypePesticide,
	EventTypeHarvest,
	EventTypeOther,
}

// IsValid reports whether t is a known event type
func (t EventType) IsValid() bool {
	for _, v := range ValidEventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// CropEvent is a scheduled farming activity on the crop calendar
type CropEvent struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId,omitempty"`
	CropType   string     `json:"cropType"`
	EventType  EventType  `json:"eventType"`
	Date       time.Time  `json:"date"`
	Notes      string     `json:"notes,omitempty"`
	Completed  bool       `json:"completed"`
	Reminder   bool       `json:"reminder"`
	RemindedAt *time.Time `json:"remindedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CropEventUpdate carries a partial update; nil fields are left unchanged
type CropEventUpdate struct {
	CropType  *string
	EventType *EventType
	Date      *time.Time
	Notes     *string
	Completed *bool
	Reminder  *bool
}
