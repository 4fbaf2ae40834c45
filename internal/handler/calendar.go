package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/calendar"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// CreateEventRequest is the body of a new calendar event.
// Reminder defaults to true when omitted.
type CreateEventRequest struct {
	UserID    string     `json:"userId" validate:"max=64"`
	CropType  string     `json:"cropType" validate:"required,max=50"`
	EventType string     `json:"eventType" validate:"event_type"`
	Date      *time.Time `json:"date" validate:"required"`
	Notes     string     `json:"notes" validate:"max=500"`
	Reminder  *bool      `json:"reminder"`
}

func (r CreateEventRequest) toEvent() *domain.CropEvent {
	reminder := true
	if r.Reminder != nil {
		reminder = *r.Reminder
	}
	return &domain.CropEvent{
		UserID:    strings.TrimSpace(r.UserID),
		CropType:  r.CropType,
		EventType: domain.EventType(strings.ToLower(r.EventType)),
		Date:      *r.Date,
		Notes:     r.Notes,
		Reminder:  reminder,
	}
}

// UpdateEventRequest is a partial event update; omitted fields are unchanged
type UpdateEventRequest struct {
	CropType  *string    `json:"cropType" validate:"omitempty,min=1,max=50"`
	EventType *string    `json:"eventType" validate:"omitempty,event_type"`
	Date      *time.Time `json:"date"`
	Notes     *string    `json:"notes" validate:"omitempty,max=500"`
	Completed *bool      `json:"completed"`
	Reminder  *bool      `json:"reminder"`
}

func (r UpdateEventRequest) toUpdate() domain.CropEventUpdate {
	update := domain.CropEventUpdate{
		CropType:  r.CropType,
		Date:      r.Date,
		Notes:     r.Notes,
		Completed: r.Completed,
		Reminder:  r.Reminder,
	}
	if r.EventType != nil {
		et := domain.EventType(strings.ToLower(*r.EventType))
		update.EventType = &et
	}
	return update
}

// CalendarHandler handles crop calendar requests
type CalendarHandler struct {
	calendarSvc calendar.Service
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarSvc calendar.Service) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// Create adds a calendar event
// @Summary Create calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/calendar/events [post]
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create event"); err != nil {
		return
	}

	event, err := h.calendarSvc.CreateEvent(r.Context(), req.toEvent())
	if err != nil {
		respondServiceError(w, r, "Create event", err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Success: true, Data: event})
}

// List returns a user's events in date order
// @Summary List calendar events
// @Tags calendar
// @Produce json
// @Param user_id query string false "User ID; omitted lists anonymous events"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/calendar/events [get]
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(GetOptionalQueryParam(r, "user_id", ""))

	events, err := h.calendarSvc.ListEvents(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List events", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(events))
}

// Upcoming returns incomplete events in the next days days
// @Summary Upcoming calendar events
// @Tags calendar
// @Produce json
// @Param days query int false "Window in days (default 7, max 365)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/calendar/events/upcoming [get]
func (h *CalendarHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days, ok := GetIntQueryParam(r, w, "days")
	if !ok {
		return
	}

	events, err := h.calendarSvc.UpcomingEvents(r.Context(), days)
	if err != nil {
		respondServiceError(w, r, "Upcoming events", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(events))
}

// Get returns one event
// @Summary Get calendar event
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/calendar/events/{id} [get]
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	event, err := h.calendarSvc.GetEvent(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get event", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Success: true, Data: event})
}

// Update applies a partial update to an event
// @Summary Update calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequest true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/calendar/events/{id} [put]
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update event"); err != nil {
		return
	}

	event, err := h.calendarSvc.UpdateEvent(r.Context(), id, req.toUpdate())
	if err != nil {
		respondServiceError(w, r, "Update event", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Success: true, Data: event})
}

// Delete removes an event
// @Summary Delete calendar event
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	if err := h.calendarSvc.DeleteEvent(r.Context(), id); err != nil {
		respondServiceError(w, r, "Delete event", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventDeletedSuccess})
}
