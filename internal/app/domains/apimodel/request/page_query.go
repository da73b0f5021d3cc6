package request

import "strings"

// 分页默认值
const (
	DefaultPageNum  = 1
	DefaultPageSize = 20
)

// 排序方向
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// PageQuery 通用分页查询参数
type PageQuery struct {
	PageNum        int    `form:"pageNum" json:"pageNum"`               // 页码，1 起
	PageSize       int    `form:"pageSize" json:"pageSize"`             // 每页条数
	OrderField     string `form:"orderField" json:"orderField"`         // 排序字段
	OrderDirection string `form:"orderDirection" json:"orderDirection"` // asc / desc，默认 desc
}

// Normalize 把越界或缺省的参数收敛到默认值
func (q *PageQuery) Normalize() {
	if q.PageNum < 1 {
		q.PageNum = DefaultPageNum
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	switch strings.ToLower(q.OrderDirection) {
	case OrderAsc:
		q.OrderDirection = OrderAsc
	default:
		q.OrderDirection = OrderDesc
	}
}

// Offset 计算偏移量
func (q *PageQuery) Offset() int {
	return (q.PageNum - 1) * q.PageSize
}
