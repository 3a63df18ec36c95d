package health

import (
	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/gin-gonic/gin"
)

// Return status of the API along with the latest database check
func getStatus(monitor *Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data any
		if monitor != nil {
			data = monitor.Status()
		}

		res := api_types.NewSuccessResponse("OK", data)
		c.JSON(res.AsGinResponse())
	}
}
