package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/controllers"
)

func TripRoutes(r *gin.Engine, tc *controllers.TripController, auth gin.HandlerFunc) {
	trips := r.Group("/trips")
	trips.Use(auth)
	{
		trips.POST("", tc.CreateTrip)
		trips.GET("", tc.ListTrips)
		trips.GET("/:id", tc.GetTrip)
		trips.PATCH("/:id", tc.UpdateTrip)
		trips.PUT("/:id/period", tc.UpdatePeriod)
		trips.DELETE("/:id", tc.DeleteTrip)
	}
}
