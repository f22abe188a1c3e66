// File: handlers/trip.go
package handlers

import (
	"context"
	"net/http"

	"tripplanner/services/trip"

	"github.com/gin-gonic/gin"
)

type messageInput struct {
	Message string `json:"message" binding:"required"`
}

// parseHandler adapts one domain's extraction operation to HTTP.
func (hb *HandlerBundle) parseHandler(c *gin.Context, parse func(ctx context.Context, sessionID, input string) (*trip.ExtractResult, error)) {
	var input messageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := parse(c.Request.Context(), c.Param("sessionID"), input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "extraction failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (hb *HandlerBundle) checkHandler(c *gin.Context, check func(ctx context.Context, sessionID string) (*trip.CheckResult, error)) {
	res, err := check(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (hb *HandlerBundle) bookHandler(c *gin.Context, book func(ctx context.Context, sessionID string) (*trip.BookResult, error)) {
	res, err := book(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking failed", "details": err.Error()})
		return
	}
	status := http.StatusOK
	if res.Status == trip.StatusMissingData {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, res)
}

func (hb *HandlerBundle) cancelHandler(c *gin.Context, cancel func(ctx context.Context, sessionID string) (*trip.CancelResult, error)) {
	res, err := cancel(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cancellation failed", "details": err.Error()})
		return
	}
	status := http.StatusOK
	if res.Status == trip.StatusNotFound {
		status = http.StatusNotFound
	}
	c.JSON(status, res)
}

func (hb *HandlerBundle) ParseTravelHandler(c *gin.Context) {
	hb.parseHandler(c, hb.TripSvc.ParseTravel)
}
func (hb *HandlerBundle) CheckTravelHandler(c *gin.Context) {
	hb.checkHandler(c, hb.TripSvc.CheckTravel)
}
func (hb *HandlerBundle) BookTravelHandler(c *gin.Context) {
	hb.bookHandler(c, hb.TripSvc.BookTravel)
}
func (hb *HandlerBundle) CancelTravelHandler(c *gin.Context) {
	hb.cancelHandler(c, hb.TripSvc.CancelTravel)
}

func (hb *HandlerBundle) ParseAccommodationHandler(c *gin.Context) {
	hb.parseHandler(c, hb.TripSvc.ParseAccommodation)
}
func (hb *HandlerBundle) CheckAccommodationHandler(c *gin.Context) {
	hb.checkHandler(c, hb.TripSvc.CheckAccommodation)
}
func (hb *HandlerBundle) BookAccommodationHandler(c *gin.Context) {
	hb.bookHandler(c, hb.TripSvc.BookAccommodation)
}
func (hb *HandlerBundle) CancelAccommodationHandler(c *gin.Context) {
	hb.cancelHandler(c, hb.TripSvc.CancelAccommodation)
}

func (hb *HandlerBundle) ParseSightseeingHandler(c *gin.Context) {
	hb.parseHandler(c, hb.TripSvc.ParseSightseeing)
}
func (hb *HandlerBundle) CheckSightseeingHandler(c *gin.Context) {
	hb.checkHandler(c, hb.TripSvc.CheckSightseeing)
}
func (hb *HandlerBundle) BookSightseeingHandler(c *gin.Context) {
	hb.bookHandler(c, hb.TripSvc.BookSightseeing)
}
func (hb *HandlerBundle) CancelSightseeingHandler(c *gin.Context) {
	hb.cancelHandler(c, hb.TripSvc.CancelSightseeing)
}

// ConflictsHandler recomputes and returns the conflict report.
func (hb *HandlerBundle) ConflictsHandler(c *gin.Context) {
	report, err := hb.TripSvc.Conflicts(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "conflict check failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// BillHandler returns the aggregated cost breakdown.
func (hb *HandlerBundle) BillHandler(c *gin.Context) {
	bill, err := hb.TripSvc.Bill(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "billing failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bill)
}

// EstimateHandler reports the running trip total against the budget.
func (hb *HandlerBundle) EstimateHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	bill, err := hb.TripSvc.Bill(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "estimate failed", "details": err.Error()})
		return
	}
	sess, err := hb.SessionSvc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found", "details": err.Error()})
		return
	}

	budget := sess.State.Budget
	resp := gin.H{
		"total":  bill.Total,
		"budget": budget,
	}
	if budget > 0 {
		resp["within_budget"] = bill.Total <= budget
		resp["remaining"] = budget - bill.Total
	}
	c.JSON(http.StatusOK, resp)
}

// BookingsHandler lists the active bookings.
func (hb *HandlerBundle) BookingsHandler(c *gin.Context) {
	res, err := hb.TripSvc.ActiveBookings(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelledBookingsHandler lists the cancellation history.
func (hb *HandlerBundle) CancelledBookingsHandler(c *gin.Context) {
	res, err := hb.TripSvc.CancelledBookings(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
