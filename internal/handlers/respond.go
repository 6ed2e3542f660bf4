package handlers

import (
	"errors"
	"net/http"

	"cobbler_crm/internal/workflow"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Every response uses the {success, data|error} envelope.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// respondError maps service errors onto the envelope: validation errors
// carry their field list, missing records map to 404, the rest to 500.
func respondError(c *gin.Context, err error) {
	var verr *workflow.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   verr.Error(),
			"fields":  verr.Fields,
		})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}

// TokenAuth rejects requests whose X-Token header does not match the
// shared secret.
func TokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Token") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}
		c.Next()
	}
}
