package table

const maxPageLinks = 7

// PageLink is one entry of the page selector: a page number or a gap.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

type Pagination struct {
	CurrentPage int        `json:"current_page"`
	PageSize    int        `json:"page_size"`
	TotalItems  int        `json:"total_items"`
	TotalPages  int        `json:"total_pages"`
	StartItem   int        `json:"start_item"`
	EndItem     int        `json:"end_item"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
	Links       []PageLink `json:"links"`
}

// Paginate describes page of a list with total items. Pages are 1-indexed
// and page is clamped into [1, TotalPages].
func Paginate(total, page, pageSize int) Pagination {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	p := Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
	if total > 0 {
		p.StartItem = (page-1)*pageSize + 1
		p.EndItem = min(page*pageSize, total)
	}

	for _, n := range pageWindow(page, totalPages) {
		if n == 0 {
			p.Links = append(p.Links, PageLink{Ellipsis: true})
			continue
		}
		p.Links = append(p.Links, PageLink{Page: n, Current: n == page})
	}
	if p.Links == nil {
		p.Links = []PageLink{}
	}
	return p
}

// pageWindow returns the page numbers to show, 0 marking a gap. The first
// and last pages are always present and the current page keeps its
// neighbours, e.g. 1 … 5 [6] 7 … 20.
func pageWindow(current, total int) []int {
	if total <= maxPageLinks {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	if current <= 3 {
		end = 5
	}
	if current >= total-2 {
		start = total - 4
	}

	pages := []int{1}
	if start > 2 {
		pages = append(pages, 0)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < total-1 {
		pages = append(pages, 0)
	}
	return append(pages, total)
}
