package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/declanhart/order-management-api/utils"
)

// parseIDParam reads the :id route parameter as a positive integer. On
// failure it writes the validation error response and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondValidationError(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
