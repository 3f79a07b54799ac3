package api

import (
	"Inkstone/internal/api/middleware"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/:user_id", group.UserHandler.GetUserInfo)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me", group.UserHandler.GetProfile)
				authGroup.PUT("/me", group.UserHandler.UpdateProfile)
				authGroup.GET("/me/posts", group.PostHandler.ListOwnPosts)
				authGroup.GET("/me/saved", group.PostHandler.ListSavedPosts)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/:post_id/comments", group.CommentHandler.CreateComment)
				authGroup.POST("/:post_id/like", group.PostActionHandler.ToggleLike)
				authGroup.POST("/:post_id/save", group.PostActionHandler.ToggleSave)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)

			// 分类维护限 admin / subadmin
			adminGroup := categoryGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleSubAdmin))
			{
				adminGroup.POST("", group.CategoryHandler.CreateCategory)
				adminGroup.PUT("/:category_id", group.CategoryHandler.UpdateCategory)
				adminGroup.DELETE("/:category_id", group.CategoryHandler.DeleteCategory)
			}
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)

			adminGroup := tagGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleSubAdmin))
			{
				adminGroup.POST("", group.TagHandler.CreateTag)
				adminGroup.DELETE("/:tag_id", group.TagHandler.DeleteTag)
			}
		}

		chatGroup := apiGroup.Group("/chat")
		{
			authGroup := chatGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ChatHandler.SendMessage)
				authGroup.GET("", group.ChatHandler.ListOwnMessages)
				authGroup.DELETE("/:message_id", group.ChatHandler.DeleteMessage)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleSubAdmin))
			{
				adminGroup.GET("/all", group.ChatHandler.ListAllMessages)
				adminGroup.PUT("/:message_id/reply", group.ChatHandler.ReplyMessage)
				adminGroup.PUT("/:message_id/read", group.ChatHandler.MarkRead)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware())
		{
			// 仪表盘只读数据对 subadmin 开放
			readGroup := adminGroup.Group("")
			readGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleSubAdmin))
			{
				readGroup.GET("/stats", group.AdminHandler.GetStats)
				readGroup.GET("/users", group.AdminHandler.ListUsers)
			}

			// 用户管理仅限 admin
			writeGroup := adminGroup.Group("")
			writeGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				writeGroup.PUT("/users/:user_id/role", group.AdminHandler.ChangeUserRole)
				writeGroup.DELETE("/users/:user_id", group.AdminHandler.DeleteUser)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		apiGroup.GET("/ws", group.WsHandler.Connect)
	}

	return r
}
