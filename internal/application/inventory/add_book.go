package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookpos/internal/domain/book"
)

// AddBookUseCase 新书入库用例
// 设计说明:
// 1. 应用层负责用例编排,业务规则校验由领域服务负责
// 2. 输入输出使用DTO,与HTTP层解耦
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建入库用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 入库请求DTO
type AddBookRequest struct {
	Title     string          // 书名(唯一)
	Author    string          // 作者
	Publisher string          // 出版社
	Stock     int             // 初始库存
	Price     decimal.Decimal // 单价
}

// Execute 执行入库用例
// 领域服务会处理:书名非空校验、库存/价格非负校验、书名重复检查
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookItem, error) {
	b, err := uc.bookService.AddBook(ctx, req.Title, req.Author, req.Publisher, req.Stock, req.Price)
	if err != nil {
		return nil, err
	}

	item := toBookItem(b)
	return &item, nil
}
