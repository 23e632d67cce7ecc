package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPagination reads page/page_size query params, clamping page_size to
// [1, maxSize] and falling back to defaultSize when absent or malformed.
func GetPagination(c *gin.Context, defaultSize, maxSize int) Pagination {
	pageStr := c.DefaultQuery("page", "1")
	sizeStr := c.DefaultQuery("page_size", strconv.Itoa(defaultSize))

	page, _ := strconv.Atoi(pageStr)
	size, _ := strconv.Atoi(sizeStr)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	return Pagination{
		Page:     page,
		PageSize: size,
		Offset:   (page - 1) * size,
	}
}
