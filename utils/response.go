package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the success envelope {status, message, data}. The
// message is part of the API contract: variants like the settlement
// handler's "winner notification pending" distinguish a degraded success
// from a full one.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the failure envelope {status, message, error}. The message
// is the stable summary from the error mapping; error carries the wrapped
// cause for debugging and is not meant to be matched on.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
