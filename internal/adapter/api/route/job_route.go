package route

import (
	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/controller"
	"github.com/SurajNaik1502/TPC/pkg/auth"
)

// RegisterJobRoutes registers the job board routes
func RegisterJobRoutes(r *gin.RouterGroup, jobController *controller.JobController) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobController.List)
		jobs.GET("/:id", jobController.GetByID)
		jobs.POST("/:id/apply", auth.JWTAuthMiddleware(), jobController.Apply)
	}
}
