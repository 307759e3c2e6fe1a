package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses a numeric path parameter. On failure it writes the 400
// response itself and returns 0; callers return immediately on 0.
func parseIDParam(c *gin.Context, param string) uint {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "must be a positive integer",
		})
		return 0
	}
	return uint(id)
}

// parseOptionalUintQuery parses an optional numeric query parameter. The
// second return value reports whether the parameter was present and valid;
// an invalid value writes the 400 response and returns ok=false with set=true.
func parseOptionalUintQuery(c *gin.Context, param string) (value *uint, ok bool) {
	raw, set := c.GetQuery(param)
	if !set {
		return nil, true
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "must be a positive integer",
		})
		return nil, false
	}
	v := uint(parsed)
	return &v, true
}
