package models

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
)

// RateLimitContextKey is where the admin rate limiter leaves its counters
// for the envelope.
const RateLimitContextKey = "rate_limit"

// ApiResponse is the envelope every storefront and back office endpoint
// answers with.
type ApiResponse struct {
	Message         string      `json:"message"`
	Data            any         `json:"data,omitempty"`
	Error           bool        `json:"error,omitempty"`
	Meta            *Pagination `json:"meta"`
	Rate            *RateLimit  `json:"rate_limit,omitempty"`
	RequestedEntity string      `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"12"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"4"`
}

// NewPagination describes a SQL-paginated listing. TotalPages follows the
// catalog rule: never below 1.
func NewPagination(page, limit int, total int64) *Pagination {
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: catalog.TotalPages(int(total), limit),
	}
}

// PaginationFromPage describes a page cut by the catalog pipeline.
func PaginationFromPage(p catalog.Page) *Pagination {
	return &Pagination{
		Page:       p.Page,
		Limit:      p.PageSize,
		Total:      p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

type RateLimit struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

func rateLimitFrom(c *gin.Context) *RateLimit {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(RateLimitContextKey); ok {
		if rl, ok := v.(*RateLimit); ok {
			return rl
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return PaginatedResponse(c, message, data, nil)
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            rateLimitFrom(c),
		RequestedEntity: requestedEntity(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            rateLimitFrom(c),
		RequestedEntity: requestedEntity(c),
	}
}
