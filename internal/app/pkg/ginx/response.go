package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ucenter/internal/app/pkg/statuscode"
)

// Result 统一响应结构，三个字段的名称和顺序是对外契约
type Result struct {
	Code    int         `json:"code" example:"200"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"success"`
}

// Success 构造成功响应
func Success(data interface{}) Result {
	return Result{
		Code: statuscode.Success.Code,
		Data: data,
	}
}

// Fail 构造失败响应（通用失败码）
func Fail(message string) Result {
	return Result{
		Code:    statuscode.Fail.Code,
		Message: message,
	}
}

// WithCode 按指定状态码构造响应，message 取状态码的默认提示
func WithCode(sc statuscode.StatusCode, data interface{}) Result {
	return Result{
		Code:    sc.Code,
		Data:    data,
		Message: sc.Message,
	}
}

// OK 输出成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Success(data))
}

// FailMsg 输出通用失败响应
func FailMsg(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Fail(message))
}

// FailCode 输出指定状态码的失败响应，message 为空时取默认提示
func FailCode(c *gin.Context, sc statuscode.StatusCode, message string) {
	if message == "" {
		message = sc.Message
	}
	c.JSON(http.StatusOK, Result{
		Code:    sc.Code,
		Message: message,
	})
}
