package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rishabh-bijalwan12/vibe-share/controllers"
)

// ConnectionRouter registers the social-graph and profile routes behind the
// auth gate.
func ConnectionRouter(incomingRoutes *gin.Engine, requireAuth gin.HandlerFunc, cc *controllers.ConnectionController) {
	protected := incomingRoutes.Group("/", requireAuth)

	protected.PUT("/follow", cc.Follow)
	protected.PUT("/unfollow", cc.Unfollow)
	protected.GET("/userprofile/:Id", cc.UserProfile)
	protected.GET("/userdetails", cc.UserDetails)
	protected.GET("/userdetails/:userId", cc.UserDetailsByID)
}
