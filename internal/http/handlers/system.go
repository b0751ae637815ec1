package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "shuttlebook backend running"})
}

func (h *API) DBCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"message": "running on in-memory store"})
		return
	}
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM trips").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "trips_in_db": count})
}
