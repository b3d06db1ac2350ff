package api

import (
	"net/http"
	"strconv"

	"github.com/explorex/reservations/internal/validation"
	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func validationFailed(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}
