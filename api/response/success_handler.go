package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/domain/listing"
)

func HandleSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}

func HandleCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: getRequestID(c),
	})
}

func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// HandlePaginated renders one listing page together with the applied window.
func HandlePaginated(c *gin.Context, data interface{}, pager listing.Pager, count int, message string) {
	c.JSON(http.StatusOK, &PaginatedResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Page:     pager.Page,
			PageSize: pager.Limit,
			Count:    count,
		},
		Message:   message,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}
