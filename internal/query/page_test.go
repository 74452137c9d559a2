package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		limit        int
		defaultLimit int
		want         Page
		wantSkip     int
	}{
		{name: "explicit values", page: 2, limit: 5, defaultLimit: 10, want: Page{Page: 2, Limit: 5}, wantSkip: 5},
		{name: "zero page clamps to first", page: 0, limit: 5, defaultLimit: 10, want: Page{Page: 1, Limit: 5}, wantSkip: 0},
		{name: "negative page clamps to first", page: -3, limit: 5, defaultLimit: 10, want: Page{Page: 1, Limit: 5}, wantSkip: 0},
		{name: "missing limit uses default", page: 3, limit: 0, defaultLimit: 12, want: Page{Page: 3, Limit: 12}, wantSkip: 24},
		{name: "negative limit uses default", page: 1, limit: -1, defaultLimit: 6, want: Page{Page: 1, Limit: 6}, wantSkip: 0},
		{name: "huge page is capped", page: 1 << 62, limit: 12, defaultLimit: 12, want: Page{Page: math.MaxInt / 12, Limit: 12}, wantSkip: (math.MaxInt/12 - 1) * 12},
		{name: "max page with max limit", page: math.MaxInt, limit: math.MaxInt, defaultLimit: 10, want: Page{Page: 1, Limit: math.MaxInt}, wantSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPage(tt.page, tt.limit, tt.defaultLimit)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSkip, got.Skip())
			assert.GreaterOrEqual(t, got.Skip(), 0)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 12))
	assert.Equal(t, 0, TotalPages(5, 0))
	assert.Equal(t, 1, TotalPages(25, math.MaxInt))
}

func TestPage_Pagination(t *testing.T) {
	p := NewPage(2, 12, DefaultPublicLimit)

	got := p.Pagination(25)

	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 12, got.Limit)
	assert.Equal(t, 25, got.Total)
	assert.Equal(t, 3, got.Pages)
}
