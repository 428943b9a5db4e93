package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rishabh-bijalwan12/vibe-share/controllers"
)

// PostRouter registers the post routes behind the auth gate.
func PostRouter(incomingRoutes *gin.Engine, requireAuth gin.HandlerFunc, pc *controllers.PostController) {
	protected := incomingRoutes.Group("/", requireAuth)

	protected.POST("/createpost", pc.CreatePost)
	protected.GET("/allpost", pc.AllPosts)
	protected.GET("/mypost", pc.MyPosts)
	protected.PUT("/like", pc.Like)
	protected.PUT("/unlike", pc.Unlike)
	protected.PUT("/comment", pc.Comment)
	protected.DELETE("/deletepost/:postId", pc.DeletePost)
}
