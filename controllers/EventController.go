package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pridehub/models"
	"pridehub/services"
)

type EventController struct {
	events *services.EventService
}

func NewEventController(events *services.EventService) *EventController {
	return &EventController{events: events}
}

func (ec *EventController) Create(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if err := validate.Struct(event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	created, err := ec.events.Create(c.Request.Context(), actingUserID(c), event)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "event saved successfully", "event": created})
}

func (ec *EventController) Get(c *gin.Context) {
	eventID, ok := pathObjectID(c, "event_id")
	if !ok {
		return
	}
	event, err := ec.events.Get(c.Request.Context(), eventID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "event fetched successfully", "event": event})
}

func (ec *EventController) Update(c *gin.Context) {
	eventID, ok := pathObjectID(c, "event_id")
	if !ok {
		return
	}
	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		MeetingURL  *string `json:"meetingURL"`
		ImageURL    *string `json:"imageURL"`
		StartDate   *string `json:"startDate"`
		StartTime   *string `json:"startTime"`
		EndDate     *string `json:"endDate"`
		EndTime     *string `json:"endTime"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	update := services.EventUpdate{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		MeetingURL:  body.MeetingURL,
		ImageURL:    body.ImageURL,
		StartDate:   body.StartDate,
		StartTime:   body.StartTime,
		EndDate:     body.EndDate,
		EndTime:     body.EndTime,
	}
	event, err := ec.events.Update(c.Request.Context(), actingUserID(c), eventID, update)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "event updated successfully", "event": event})
}

func (ec *EventController) Delete(c *gin.Context) {
	eventID, ok := pathObjectID(c, "event_id")
	if !ok {
		return
	}
	if err := ec.events.Delete(c.Request.Context(), actingUserID(c), eventID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "event deleted successfully"})
}

func (ec *EventController) Register(c *gin.Context) {
	eventID, ok := pathObjectID(c, "event_id")
	if !ok {
		return
	}
	attendees, err := ec.events.Register(c.Request.Context(), eventID, actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "event registration successful", "attendees": attendees})
}

func (ec *EventController) Unregister(c *gin.Context) {
	eventID, ok := pathObjectID(c, "event_id")
	if !ok {
		return
	}
	attendees, err := ec.events.Unregister(c.Request.Context(), eventID, actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "event registration withdrawn", "attendees": attendees})
}

func (ec *EventController) Upcoming(c *gin.Context) {
	ec.byPhase(c, services.PhaseUpcoming, "upcoming events fetched successfully")
}

func (ec *EventController) Ongoing(c *gin.Context) {
	ec.byPhase(c, services.PhaseOngoing, "ongoing events fetched successfully")
}

func (ec *EventController) Past(c *gin.Context) {
	ec.byPhase(c, services.PhasePast, "past events fetched successfully")
}

func (ec *EventController) byPhase(c *gin.Context, phase services.EventPhase, message string) {
	events, err := ec.events.ByPhase(c.Request.Context(), phase, time.Now())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, "events": events})
}

// MyEvents lists events created by the acting user.
func (ec *EventController) MyEvents(c *gin.Context) {
	events, err := ec.events.ByCreator(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "events fetched successfully", "events": events})
}
