package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/service"
)

type EventResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func eventToResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		Status:      string(e.Status),
		StartDate:   formatTime(e.StartDate),
		EndDate:     formatTime(e.EndDate),
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
}

func eventsToResponse(events []domain.Event) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i := range events {
		resp[i] = eventToResponse(events[i])
	}
	return resp
}

type AttendeeResponse struct {
	UserID   int64  `json:"userId"`
	JoinedAt string `json:"joinedAt"`
}

type createEventRequest struct {
	UserID      int64     `json:"userId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Location    *string    `json:"location"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (h *Handler) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.events.Create(c.Request.Context(), service.EventInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Status:      domain.EventStatus(req.Status),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eventToResponse(*event))
}

func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponse(events))
}

func (h *Handler) getEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventToResponse(*event))
}

func (h *Handler) listEventsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	status := c.Query("status")
	if status != "" {
		events, err := h.events.ListByUserAndStatus(c.Request.Context(), userID, domain.EventStatus(status))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, eventsToResponse(events))
		return
	}

	events, err := h.events.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponse(events))
}

func (h *Handler) listEventsByStatus(c *gin.Context) {
	events, err := h.events.ListByStatus(c.Request.Context(), domain.EventStatus(c.Param("status")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponse(events))
}

func (h *Handler) listEventsByCategory(c *gin.Context) {
	events, err := h.events.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponse(events))
}

func (h *Handler) listEventsByDateRange(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	events, err := h.events.ListByStartDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponse(events))
}

func (h *Handler) listUpcomingEvents(c *gin.Context) {
	events, err := h.events.ListUpcoming(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponse(events))
}

func (h *Handler) updateEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := service.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		patch.Status = &status
	}

	event, err := h.events.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventToResponse(*event))
}

func (h *Handler) deleteEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) registerForEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseQueryID(c, "userId")
	if !ok {
		return
	}
	if err := h.events.Register(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": userID})
}

func (h *Handler) unregisterFromEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseQueryID(c, "userId")
	if !ok {
		return
	}
	if err := h.events.Unregister(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unregistered": userID})
}

func (h *Handler) listEventAttendees(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attendees, err := h.events.Attendees(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]AttendeeResponse, len(attendees))
	for i := range attendees {
		resp[i] = AttendeeResponse{
			UserID:   attendees[i].UserID,
			JoinedAt: formatTime(attendees[i].JoinedAt),
		}
	}
	c.JSON(http.StatusOK, resp)
}
