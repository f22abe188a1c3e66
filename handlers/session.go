// File: handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartSessionHandler creates a planning session, creating the user record
// on first contact.
func (hb *HandlerBundle) StartSessionHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required"`
		SessionName string `json:"session_name"`
		Budget      int    `json:"budget"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := hb.SessionSvc.StartSession(c.Request.Context(), input.Name, input.Email, input.SessionName, input.Budget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetSessionHandler returns one session including its state document.
func (hb *HandlerBundle) GetSessionHandler(c *gin.Context) {
	sess, err := hb.SessionSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ListSessionsHandler returns all sessions of a user.
func (hb *HandlerBundle) ListSessionsHandler(c *gin.Context) {
	sessions, err := hb.SessionSvc.ListSessions(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// EndSessionHandler deactivates a session.
func (hb *HandlerBundle) EndSessionHandler(c *gin.Context) {
	if err := hb.SessionSvc.EndSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}
