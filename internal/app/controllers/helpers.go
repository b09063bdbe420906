package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	idStr := ctx.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter", paramName)
	}
	return id, nil
}

// getUserID reads the authenticated user's ID set by the JWT middleware
func getUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

// optionalQuery returns a pointer to the query value, nil when absent
func optionalQuery(ctx *gin.Context, name string) *string {
	if value := ctx.Query(name); value != "" {
		return &value
	}
	return nil
}
