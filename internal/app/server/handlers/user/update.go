package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/apimodel/response"
	"ucenter/internal/app/pkg/ginx"
	"ucenter/internal/app/pkg/statuscode"
	"ucenter/internal/app/pkg/validation"
)

// Update godoc
// @Summary      更新用户
// @Description  按ID更新用户的昵称/邮箱/手机号，账号不可变更
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body request.UpdateUserRequest true "更新用户请求"
// @Success      200 {object} ginx.Result{data=response.UserResponse} "更新成功"
// @Failure      200 {object} ginx.Result "参数错误/用户不存在"
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.FailCode(c, statuscode.ParamInvalid, "invalid user id")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.FailCode(c, statuscode.ParamFormat, "invalid request body")
		return
	}

	if v := validation.First(req.Rules()); v != nil {
		ginx.FailCode(c, statuscode.ParamInvalid, v.Message)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, &req, actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.OK(c, response.FromUserEntity(user))
}
