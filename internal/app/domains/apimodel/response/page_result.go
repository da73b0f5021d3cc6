package response

// PageResult 通用分页返回容器
type PageResult[T any] struct {
	Total int64 `json:"total"` // 总条数
	Items []T   `json:"items"` // 当前页数据，长度不超过 pageSize
}

// NewPageResult 构造分页结果
func NewPageResult[T any](total int64, items []T) *PageResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &PageResult[T]{Total: total, Items: items}
}
