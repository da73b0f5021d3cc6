package routers

import (
	"github.com/gin-gonic/gin"

	"ucenter/internal/app/pkg/logger"
	"ucenter/internal/app/pkg/validation"
	"ucenter/internal/app/server/handlers/user"
	"ucenter/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(userHandler *user.UserHandler, log logger.Logger) *gin.Engine {
	// 自定义约束同步进 binding 引擎
	validation.InstallBinding()

	r := gin.New()

	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.CORS())
	r.Use(middlewares.AccessLog(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "ucenter",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return r
}
