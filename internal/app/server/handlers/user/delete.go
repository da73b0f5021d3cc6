package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ucenter/internal/app/pkg/ginx"
	"ucenter/internal/app/pkg/statuscode"
)

// deleteResult 删除结果
type deleteResult struct {
	Affected int64 `json:"affected" example:"1"`
}

// Delete godoc
// @Summary      删除用户
// @Description  按ID删除用户，ID不存在时影响行数为 0，不报错
// @Tags         users
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} ginx.Result{data=deleteResult} "删除完成"
// @Failure      200 {object} ginx.Result "参数错误"
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.FailCode(c, statuscode.ParamInvalid, "invalid user id")
		return
	}

	affected, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.OK(c, deleteResult{Affected: affected})
}
