// Package table derives the visible page of a row set from a search term,
// a single sort column and a page position. The pipeline order is fixed:
// filter, then sort, then slice.
package table

import (
	"errors"
	"strings"
)

type SortDirection string

const (
	SortNone SortDirection = "none"
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const DefaultPageSize = 20

// PageSizes are the page sizes a caller may pick.
var PageSizes = []int{10, 20, 50, 100}

var (
	ErrInvalidPageSize  = errors.New("page size must be one of 10, 20, 50 or 100")
	ErrInvalidPage      = errors.New("page must be 1 or greater")
	ErrInvalidDirection = errors.New("sort direction must be asc, desc or none")
)

// State is everything the pipeline needs besides the rows. The zero value is
// not usable; start from NewState.
type State struct {
	SortColumn string        `json:"sort_column,omitempty"`
	Direction  SortDirection `json:"direction"`
	Search     string        `json:"search,omitempty"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}

func NewState() State {
	return State{Direction: SortNone, Page: 1, PageSize: DefaultPageSize}
}

// ToggleSort advances the sort cycle for column: none, asc, desc, none.
// Selecting a different column starts over at asc.
func (s State) ToggleSort(column string) State {
	switch {
	case s.SortColumn != column || s.Direction == SortNone:
		s.SortColumn, s.Direction = column, SortAsc
	case s.Direction == SortAsc:
		s.Direction = SortDesc
	default:
		s.SortColumn, s.Direction = "", SortNone
	}
	s.Page = 1
	return s
}

// WithSort sets the sort explicitly. SortNone clears the column.
func (s State) WithSort(column string, direction SortDirection) (State, error) {
	switch direction {
	case SortAsc, SortDesc:
		if column == "" {
			direction = SortNone
		}
	case SortNone, "":
		column, direction = "", SortNone
	default:
		return s, ErrInvalidDirection
	}
	s.SortColumn, s.Direction = column, direction
	s.Page = 1
	return s, nil
}

func (s State) WithSearch(term string) State {
	s.Search = term
	s.Page = 1
	return s
}

func (s State) WithPage(page int) (State, error) {
	if page < 1 {
		return s, ErrInvalidPage
	}
	s.Page = page
	return s, nil
}

func (s State) WithPageSize(size int) (State, error) {
	if !ValidPageSize(size) {
		return s, ErrInvalidPageSize
	}
	s.PageSize = size
	s.Page = 1
	return s, nil
}

func ValidPageSize(size int) bool {
	for _, allowed := range PageSizes {
		if size == allowed {
			return true
		}
	}
	return false
}

// ParseDirection accepts any casing; empty means none.
func ParseDirection(value string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(value))); d {
	case "":
		return SortNone, nil
	case SortNone, SortAsc, SortDesc:
		return d, nil
	}
	return "", ErrInvalidDirection
}
