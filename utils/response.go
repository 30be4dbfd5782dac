// Package utils holds small helpers shared across the HTTP boundary.
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/declanhart/order-management-api/apperrors"
)

// RespondSuccess writes the success envelope with the given status and data
func RespondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondNoContent writes an empty 204 response
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondError writes the failure envelope using the error's HTTP status
func RespondError(c *gin.Context, appErr *apperrors.Error) {
	c.JSON(appErr.Status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// RespondValidationError writes the failure envelope for a request that
// failed body binding or field validation
func RespondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": details,
		},
	})
}
