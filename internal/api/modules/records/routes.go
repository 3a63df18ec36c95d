package records

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the records module
func RegisterRoutes(g *gin.RouterGroup, ctl *Controller) {
	group := g.Group("/records")

	group.POST("", ctl.Create)             // Create a new record
	group.GET("/:id", ctl.Get)             // Get a record by its numeric id
	group.PUT("/:id", ctl.Update)          // Update fields of a record
	group.DELETE("/:id", ctl.Delete)       // Archive a record
	group.GET("/:id/history", ctl.History) // List operations performed on a record
}
