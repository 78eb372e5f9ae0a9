package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/controllers"
)

func ScheduleRoutes(r *gin.Engine, sc *controllers.ScheduleController, auth gin.HandlerFunc) {
	r.POST("/trips/:id/schedules", auth, sc.CreateSchedule)

	schedules := r.Group("/schedules")
	schedules.Use(auth)
	{
		schedules.GET("/:id", sc.GetSchedule)
		schedules.PUT("/:id", sc.UpdateSchedule)
		schedules.PUT("/:id/position", sc.MoveSchedule)
		schedules.DELETE("/:id", sc.DeleteSchedule)
	}
}
