package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -5, 10, 0, 10},
		{"zero size falls back to default", 2, 0, 10, DefaultPageSize},
		{"oversize falls back to default", 2, MaxPageSize + 1, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, int64(45), info.Total)
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, 5, info.TotalPages)

	// Empty result still reports one page
	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)

	// Page beyond the end is clamped to the last page
	clamped := NewPaginationInfo(15, 9, 10)
	assert.Equal(t, 2, clamped.Page)
	assert.Equal(t, 2, clamped.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		return c
	}

	page, size := ParsePaginationParams(newCtx("page=3&pageSize=25"), DefaultPageSize)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)

	page, size = ParsePaginationParams(newCtx(""), 20)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = ParsePaginationParams(newCtx("page=abc&pageSize=-1"), DefaultPageSize)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, size)

	_, size = ParsePaginationParams(newCtx("pageSize=500"), DefaultPageSize)
	assert.Equal(t, DefaultPageSize, size)
}
