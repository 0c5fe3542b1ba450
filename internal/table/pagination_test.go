package table

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(links []PageLink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		switch {
		case l.Ellipsis:
			parts = append(parts, "…")
		case l.Current:
			parts = append(parts, "["+strconv.Itoa(l.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(l.Page))
		}
	}
	return strings.Join(parts, " ")
}

func TestPaginate_Links(t *testing.T) {
	tests := []struct {
		page, pages int
		want        string
	}{
		{1, 1, "[1]"},
		{3, 5, "1 2 [3] 4 5"},
		{4, 7, "1 2 3 [4] 5 6 7"},
		{1, 20, "[1] 2 3 4 5 … 20"},
		{3, 20, "1 2 [3] 4 5 … 20"},
		{6, 20, "1 … 5 [6] 7 … 20"},
		{18, 20, "1 … 16 17 [18] 19 20"},
		{20, 20, "1 … 16 17 18 19 [20]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := Paginate(tt.pages*10, tt.page, 10)
			assert.Equal(t, tt.want, render(p.Links))

			numbered := 0
			for _, l := range p.Links {
				if !l.Ellipsis {
					numbered++
				}
			}
			assert.LessOrEqual(t, numbered, maxPageLinks)
		})
	}
}

func TestPaginate_Summary(t *testing.T) {
	p := Paginate(95, 5, 20)
	assert.Equal(t, 5, p.TotalPages)
	assert.Equal(t, 81, p.StartItem)
	assert.Equal(t, 95, p.EndItem)
	assert.True(t, p.HasPrevious)
	assert.False(t, p.HasNext)

	p = Paginate(95, 1, 20)
	assert.Equal(t, 1, p.StartItem)
	assert.Equal(t, 20, p.EndItem)
	assert.False(t, p.HasPrevious)
	assert.True(t, p.HasNext)
}
