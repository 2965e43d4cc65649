package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageSize  int
		total     int64
		wantPages int64
	}{
		{"exact division", 1, 10, 30, 3},
		{"partial last page", 2, 10, 31, 4},
		{"empty result", 1, 20, 0, 0},
		{"single item", 1, 20, 1, 1},
		{"zero page size", 1, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.total, p.TotalCount)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}
