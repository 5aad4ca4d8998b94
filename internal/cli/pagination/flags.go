package pagination

import (
	"errors"
	"fmt"
	"slices"
)

// Validation limits.
const (
	MaxLimit        = 10000
	MaxPageSize     = 1000
	DefaultOffset   = 0
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Validation errors.
var (
	ErrNegativeValue        = errors.New("pagination values cannot be negative")
	ErrInvalidLimit         = errors.New("limit must be between 1 and 10000")
	ErrInvalidPageSize      = errors.New("page-size must be between 1 and 1000")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset) and page-based (--page) pagination")
	ErrPageSizeWithoutPage  = errors.New("--page-size requires --page to be set")
	ErrPageSizeNotOffered   = errors.New("page-size is not one of the offered sizes")
)

// PaginationParams holds CLI pagination flags and provides validation.
// A zero Limit means no limit in offset mode.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Limit is the maximum number of results to return (offset-based mode).
	Limit int

	// Offset is the number of results to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode).
	Page int

	// PageSize is the number of results per page (page-based mode).
	PageSize int
}

// NewPaginationParams creates a PaginationParams showing everything.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{
		Offset: DefaultOffset,
		Page:   0, // 0 means page-based mode not active
	}
}

// WithDefaultPageSize fills PageSize when a page was requested without one.
func (p PaginationParams) WithDefaultPageSize(size int) PaginationParams {
	if p.Page > 0 && p.PageSize == 0 {
		p.PageSize = size
	}
	return p
}

// Validate checks that the parameters are in range and use one mode only.
func (p PaginationParams) Validate() error {
	if p.Limit < 0 || p.Offset < 0 || p.Page < 0 || p.PageSize < 0 {
		return ErrNegativeValue
	}
	if p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageSizeWithoutPage
	}
	if p.Page > 0 && p.PageSize == 0 {
		return fmt.Errorf("%w: got 0", ErrInvalidPageSize)
	}
	return nil
}

// ValidateOffered additionally requires PageSize to be one of sizes, when
// sizes is not empty.
func (p PaginationParams) ValidateOffered(sizes []int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.IsPageBased() && len(sizes) > 0 && !slices.Contains(sizes, p.PageSize) {
		return fmt.Errorf("%w: %d (choose from %v)", ErrPageSizeNotOffered, p.PageSize, sizes)
	}
	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled returns true if any pagination parameters are set.
func (p PaginationParams) IsEnabled() bool {
	return p.Limit > 0 || p.Page > 0 || p.PageSize > 0 || p.Offset > 0
}

// CalculateOffsetLimit returns the effective offset and limit for pagination.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// CalculateTotalPages returns the number of pages for totalResults. Only
// meaningful in page-based mode; returns 0 otherwise.
func (p PaginationParams) CalculateTotalPages(totalResults int) int {
	if !p.IsPageBased() || totalResults == 0 || p.PageSize <= 0 {
		return 0
	}
	pages := totalResults / p.PageSize
	if totalResults%p.PageSize > 0 {
		pages++
	}
	return pages
}

// Apply returns the window of items selected by p. A page past the end is
// capped to the last page; an offset past the end yields an empty slice.
// The result never aliases items.
func Apply[T any](p PaginationParams, items []T) []T {
	if len(items) == 0 {
		return []T{}
	}

	offset, limit := p.CalculateOffsetLimit()

	if p.IsPageBased() && offset >= len(items) {
		pageSize := p.PageSize
		if pageSize <= 0 {
			pageSize = len(items)
		}
		offset = ((len(items) - 1) / pageSize) * pageSize
	}

	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return slices.Clone(items[offset:end])
}
