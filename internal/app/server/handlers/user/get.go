package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ucenter/internal/app/domains/apimodel/response"
	"ucenter/internal/app/pkg/ginx"
	"ucenter/internal/app/pkg/statuscode"
)

// Get godoc
// @Summary      获取用户详情
// @Description  根据用户ID获取用户详细信息
// @Tags         users
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} ginx.Result{data=response.UserResponse} "查询成功"
// @Failure      200 {object} ginx.Result "参数错误/用户不存在"
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.FailCode(c, statuscode.ParamInvalid, "invalid user id")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.OK(c, response.FromUserEntity(user))
}
