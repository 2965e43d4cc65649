package handlers

import (
	"net/http"

	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// RespondPaged writes the uniform list envelope. An empty page is still a
// 200 with an empty data array, never a 404.
func RespondPaged(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"pagination": dto.NewPagination(page, pageSize, total),
	})
}
