package user

import (
	"github.com/gin-gonic/gin"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/apimodel/response"
	"ucenter/internal/app/pkg/ginx"
	"ucenter/internal/app/pkg/statuscode"
	"ucenter/internal/app/pkg/validation"
)

// Create godoc
// @Summary      创建用户
// @Description  创建一个新用户，账号全局唯一
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body request.CreateUserRequest true "创建用户请求"
// @Success      200 {object} ginx.Result{data=response.UserResponse} "创建成功"
// @Failure      200 {object} ginx.Result "参数错误/业务错误"
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.FailCode(c, statuscode.ParamFormat, "invalid request body")
		return
	}

	// 先校验后执行，命中第一条违反即短路
	if v := validation.First(req.Rules()); v != nil {
		ginx.FailCode(c, statuscode.ParamInvalid, v.Message)
		return
	}

	user, err := req.ToUserEntity()
	if err != nil {
		ginx.FailCode(c, statuscode.ParamInvalid, err.Error())
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), user, actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.OK(c, response.FromUserEntity(created))
}

// actor 从请求头取当前操作人
func actor(c *gin.Context) string {
	if v := c.GetHeader(actorHeader); v != "" {
		return v
	}
	return defaultActor
}
