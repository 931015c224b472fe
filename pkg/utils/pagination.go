package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// GetPaginationParams reads page and limit query parameters with defaults and caps
func GetPaginationParams(c *gin.Context) (int, int) {
	page := DefaultPage
	limit := DefaultLimit

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

// GetIDParam reads the :id path parameter as a non-empty string
func GetIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errors.New("id parameter is required")
	}
	return id, nil
}

// Paginate slices items in memory. Out-of-range pages return an empty slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	// Compare page indexes first so (page-1)*limit cannot overflow
	if len(items) == 0 || page-1 > (len(items)-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	if limit >= len(items)-start {
		return items[start:]
	}
	return items[start : start+limit]
}
