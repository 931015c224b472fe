package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", DefaultPage, DefaultLimit},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"garbage falls back", "?page=abc&limit=-4", DefaultPage, DefaultLimit},
		{"limit capped", "?limit=1000", DefaultPage, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/items"+tt.query, nil)

			page, limit := GetPaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Equal(t, []int{}, Paginate(items, 4, 2))
	assert.Equal(t, items, Paginate(items, 0, 0))
	assert.Equal(t, []int{}, Paginate([]int{}, 1, 10))
}

func TestPaginateHugePageIsEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, []int{}, Paginate([]int{1, 2, 3}, 100000000000000000, 100))
	})
	assert.Equal(t, []int{}, Paginate([]int{1, 2, 3}, int(^uint(0)>>1), MaxLimit))
}
