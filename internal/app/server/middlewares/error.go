package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ucenter/internal/app/pkg/errorx"
	"ucenter/internal/app/pkg/ginx"
	"ucenter/internal/app/pkg/logger"
)

// safeMessage 内部错误对外的固定提示，真实原因只进日志
const safeMessage = "service error, please retry"

// ErrorHandler 统一错误处理中间件
// 业务错误原样透出 code/message，其余错误一律替换为安全提示
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var bizErr *errorx.BusinessError
		if errors.As(err, &bizErr) {
			c.JSON(http.StatusOK, ginx.Result{
				Code:    bizErr.Code,
				Message: bizErr.Message,
			})
			return
		}

		log.Errorf(c.Request.Context(), "internal error on %s %s: %v",
			c.Request.Method, c.Request.URL.Path, err)
		ginx.FailMsg(c, safeMessage)
	}
}

// Recovery panic 兜底，转入内部错误分支
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic on %s %s: %v",
					c.Request.Method, c.Request.URL.Path, r)
				if !c.Writer.Written() {
					ginx.FailMsg(c, safeMessage)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
