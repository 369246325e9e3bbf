package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
)

// uuidParam validates a path parameter as a uuid before it reaches any query.
func uuidParam(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parameter "+name+" must be a valid UUID.")
		return "", false
	}
	return raw, true
}
