package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		page, size, total int
		start, end        int
	}{
		{1, 10, 25, 0, 10},
		{3, 10, 25, 20, 25},
		{4, 10, 25, 25, 25},
		{0, 0, 5, 0, 5},
	}
	for _, tt := range tests {
		start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
		assert.Equal(t, tt.start, start, "page=%d size=%d", tt.page, tt.size)
		assert.Equal(t, tt.end, end, "page=%d size=%d", tt.page, tt.size)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 5, 10)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 3, info.CurrentPage)

	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
}

func TestPaginate_WithoutParamsReturnsEverything(t *testing.T) {
	items := []int{1, 2, 3}

	page, info := Paginate(testContext("/items"), items)
	assert.Equal(t, items, page)
	assert.Nil(t, info)
}

func TestPaginate_SlicesRequestedPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, info := Paginate(testContext("/items?page=2&size=2"), items)
	assert.Equal(t, []int{3, 4}, page)
	require.NotNil(t, info)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 5, info.TotalItems)

	page, _ = Paginate(testContext("/items?size=500"), items)
	assert.Equal(t, items, page, "oversized page falls back to the default size")
}
