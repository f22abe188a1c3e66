// File: handlers/search.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchHandler answers a free-text travel query and records the answer on
// the session for later price scraping.
func (hb *HandlerBundle) SearchHandler(c *gin.Context) {
	var input struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.SearchSvc.Lookup(c.Request.Context(), c.Param("sessionID"), input.Query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
