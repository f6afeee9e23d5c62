package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "poolside/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "poolside backend running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_down", "database not connected", nil)
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM reservations").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_down", "database query failed: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "reservations_in_db": count})
}
