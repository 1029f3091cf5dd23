package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/pkg/apperror"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserPermissions extracts the user permissions from the Gin context
func GetUserPermissions(c *gin.Context) []string {
	permissions, exists := c.Get("user_permissions")
	if !exists {
		return nil
	}
	return permissions.([]string)
}

// ParseUintParam parses a numeric path parameter
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperror.NewBadRequestError("Invalid " + name)
	}
	return uint(v), nil
}

// ParseDateQuery parses an optional yyyy-MM-dd query parameter
func ParseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.NewBadRequestError(name + " must be yyyy-MM-dd")
	}
	return &t, nil
}

// ParseDateRangeQuery parses a pair of yyyy-MM-dd query parameters into an
// inclusive range, defaulting to the current month when absent. The end of
// range is pushed to the last instant of its day so same-day invoices match.
// List and report endpoints name the pair start_date/end_date; aggregated
// statements use from_date/to_date.
func ParseDateRangeQuery(c *gin.Context, fromKey, toKey string) (time.Time, time.Time, error) {
	now := time.Now()

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if from, err := ParseDateQuery(c, fromKey); err != nil {
		return time.Time{}, time.Time{}, err
	} else if from != nil {
		start = *from
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if to, err := ParseDateQuery(c, toKey); err != nil {
		return time.Time{}, time.Time{}, err
	} else if to != nil {
		end = *to
	}
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	return start, end, nil
}

// ParsePaginationQuery parses page/per_page query parameters
func ParsePaginationQuery(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return page, perPage
}
