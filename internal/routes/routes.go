package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/controllers"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/metrics"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/middleware"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// SetupRouter wires every route onto a new gin engine.
func SetupRouter(p *planner.Planner, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := middleware.RequireAuth(jwtSecret)
	TripRoutes(r, controllers.NewTripController(p), auth)
	ScheduleRoutes(r, controllers.NewScheduleController(p), auth)

	return r
}
