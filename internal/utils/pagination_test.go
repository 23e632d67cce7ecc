package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, url string) Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return GetPagination(c, 5, 10)
}

func TestGetPagination_Defaults(t *testing.T) {
	p := paginationFor(t, "/flights")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.PageSize)
	assert.Equal(t, 0, p.Offset)
}

func TestGetPagination_Offset(t *testing.T) {
	p := paginationFor(t, "/flights?page=3&page_size=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset)
}

func TestGetPagination_ClampsPageSize(t *testing.T) {
	p := paginationFor(t, "/flights?page_size=50")
	assert.Equal(t, 10, p.PageSize)
}

func TestGetPagination_MalformedParams(t *testing.T) {
	p := paginationFor(t, "/flights?page=abc&page_size=-1")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.PageSize)
}

func TestAirplaneImagePath(t *testing.T) {
	path := AirplaneImagePath("/media", "Boeing 747 Dreamliner", "photo.JPG")
	assert.Contains(t, path, "/media/uploads/airplanes/boeing-747-dreamliner-")
	assert.Contains(t, path, ".JPG")
}
