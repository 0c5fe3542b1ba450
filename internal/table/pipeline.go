package table

import (
	"slices"
	"strings"
)

// Record is a row the pipeline can read. Values lists every cell for
// searching; Field returns one cell for sorting.
type Record interface {
	Field(column string) (any, bool)
	Values() []any
}

// Row is a Record backed by a map.
type Row map[string]any

func (r Row) Field(column string) (any, bool) {
	v, ok := r[column]
	return v, ok
}

func (r Row) Values() []any {
	out := make([]any, 0, len(r))
	for _, v := range r {
		out = append(out, v)
	}
	return out
}

type View[T Record] struct {
	State      State      `json:"state"`
	Rows       []T        `json:"rows"`
	Pagination Pagination `json:"pagination"`
}

// Derive runs filter, sort and page over rows. rows is not modified.
func Derive[T Record](rows []T, state State) View[T] {
	if !ValidPageSize(state.PageSize) {
		state.PageSize = DefaultPageSize
	}
	if state.Direction == "" {
		state.Direction = SortNone
	}

	sorted := Sort(Filter(rows, state.Search), state.SortColumn, state.Direction)

	p := Paginate(len(sorted), state.Page, state.PageSize)
	state.Page = p.CurrentPage

	page := make([]T, 0, p.EndItem-p.StartItem+1)
	if p.TotalItems > 0 {
		page = append(page, sorted[p.StartItem-1:p.EndItem]...)
	}

	return View[T]{State: state, Rows: page, Pagination: p}
}

// Filter keeps rows where any cell contains term, case-insensitively.
// An empty term keeps everything.
func Filter[T Record](rows []T, term string) []T {
	if term == "" {
		return slices.Clone(rows)
	}
	term = strings.ToLower(term)

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, v := range row.Values() {
			if strings.Contains(strings.ToLower(Stringify(v)), term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Sort orders rows by column, keeping the input order among equal cells.
// Descending negates the ascending comparison, so nil cells come first.
// A missing column reads as nil.
func Sort[T Record](rows []T, column string, direction SortDirection) []T {
	out := slices.Clone(rows)
	if column == "" || (direction != SortAsc && direction != SortDesc) {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		av, _ := a.Field(column)
		bv, _ := b.Field(column)
		c := Compare(av, bv)
		if direction == SortDesc {
			return -c
		}
		return c
	})
	return out
}
