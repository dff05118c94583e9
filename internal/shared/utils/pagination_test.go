package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values pass through", 2, 25, 2, 25},
		{"zero page defaults", 0, 25, 1, 25},
		{"negative page defaults", -3, 25, 1, 25},
		{"zero page size defaults", 2, 0, 2, 20},
		{"oversized page size capped", 2, 500, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
}
