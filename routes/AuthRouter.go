package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rishabh-bijalwan12/vibe-share/controllers"
)

// AuthRouter registers the public signup and login routes.
func AuthRouter(incomingRoutes *gin.Engine, uc *controllers.UserController) {
	incomingRoutes.POST("/signup", uc.SignUp)
	incomingRoutes.POST("/login", uc.Login)
}
