package user

import (
	"github.com/gin-gonic/gin"

	"ucenter/internal/app/domains/apimodel/request"
	"ucenter/internal/app/domains/apimodel/response"
	"ucenter/internal/app/pkg/ginx"
	"ucenter/internal/app/pkg/statuscode"
)

// List godoc
// @Summary      分页查询用户
// @Description  按分页参数查询用户列表，默认每页 20 条、按ID倒序
// @Tags         users
// @Produce      json
// @Param        pageNum query int false "页码，1 起"
// @Param        pageSize query int false "每页条数"
// @Param        orderField query string false "排序字段"
// @Param        orderDirection query string false "asc / desc"
// @Success      200 {object} ginx.Result{data=response.PageResult[response.UserResponse]} "查询成功"
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var page request.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		ginx.FailCode(c, statuscode.ParamFormat, "invalid query parameters")
		return
	}

	total, users, err := h.userService.ListUsers(c.Request.Context(), &page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.OK(c, response.NewPageResult(total, response.FromUserEntities(users)))
}
