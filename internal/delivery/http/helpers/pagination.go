package helpers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"hackhub/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing values take the
// defaults; a value that is not a whole number in range is reported in fields, keyed by the
// query parameter name.
func ParsePagination(r *http.Request) (domain.PaginationParams, map[string]string) {
	q := r.URL.Query()
	fields := map[string]string{}
	params := domain.PaginationParams{
		Page:     queryInt(q.Get("page"), DefaultPage, math.MaxInt32, "page", fields),
		PageSize: queryInt(q.Get("page_size"), DefaultPageSize, MaxPageSize, "page_size", fields),
	}
	if len(fields) == 0 {
		fields = nil
	}
	return params, fields
}

func queryInt(raw string, def, max int, name string, fields map[string]string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > max {
		fields[name] = fmt.Sprintf("%s must be a whole number between 1 and %d", name, max)
		return def
	}
	return v
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPaginationMeta describes the page params selected out of total items.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
	}
}
