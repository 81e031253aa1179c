package book

import (
	"context"
)

// StockDeduction 一条库存扣减指令
// 用于结账时的批量扣减:整个购物车的扣减作为一批提交,
// 仓储实现保证"全部生效+一次整表落盘"或"全部不生效"
type StockDeduction struct {
	Title    string // 书名
	Quantity int    // 扣减数量(正数)
}

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体存储实现
// 3. 每个写操作完成后整表持久化(小数据量,简单优先)
type Repository interface {
	// Create 创建图书(书名重复时返回ErrDuplicateBook)
	Create(ctx context.Context, book *Book) error

	// FindByTitle 根据书名查找图书(区分大小写精确匹配)
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Update 更新图书信息(图书不存在时返回ErrBookNotFound)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(图书不存在时返回ErrBookNotFound)
	Delete(ctx context.Context, title string) error

	// List 返回全部图书(表内顺序)
	List(ctx context.Context) ([]*Book, error)

	// DeductStock 批量扣减库存
	// 所有扣减在内存中全部生效后,整表一次性落盘;
	// 落盘失败时回滚内存中的扣减,保证表与文件一致
	DeductStock(ctx context.Context, deductions []StockDeduction) error
}
