package sale

import (
	"context"
)

// Repository 销售流水仓储接口(只追加)
// 设计说明:
// 1. 流水是审计数据:只有Append和ListAll,不存在更新/删除操作
// 2. 每次Append后整表持久化(小数据量,简单优先)
type Repository interface {
	// Append 追加一条销售记录并持久化
	Append(ctx context.Context, record *SaleRecord) error

	// ListAll 返回全部销售记录(插入顺序,用于销售历史展示)
	ListAll(ctx context.Context) ([]*SaleRecord, error)
}
