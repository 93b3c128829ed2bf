package route

import (
	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/controller"
	"github.com/SurajNaik1502/TPC/pkg/auth"
)

// RegisterTrainingRoutes registers the training catalog routes
func RegisterTrainingRoutes(r *gin.RouterGroup, trainingController *controller.TrainingController) {
	training := r.Group("/training")
	{
		training.GET("", trainingController.List)
		training.GET("/:id", trainingController.GetByID)
		training.POST("/:id/enroll", auth.JWTAuthMiddleware(), trainingController.Enroll)
	}
}
