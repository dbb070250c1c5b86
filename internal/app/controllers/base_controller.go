package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentOwnerID reads the authenticated owner ID stored by the auth
// middleware. JWT numeric claims decode as float64.
func currentOwnerID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Get("ownerID")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}

// paginationParams reads page and page_size query parameters with bounds
func paginationParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// pathID parses a numeric path parameter
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
