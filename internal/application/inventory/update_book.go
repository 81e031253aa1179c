package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookpos/internal/domain/book"
)

// UpdateBookUseCase 修改图书用例(库存/价格)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 修改请求DTO
// NewStock/NewPrice为nil表示"保持不变"
// (UI契约中的-1哨兵由HTTP层映射为nil,应用层只接受显式可选值)
type UpdateBookRequest struct {
	Title    string
	NewStock *int
	NewPrice *decimal.Decimal
}

// Execute 执行修改用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookItem, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.Title, req.NewStock, req.NewPrice)
	if err != nil {
		return nil, err
	}

	item := toBookItem(b)
	return &item, nil
}
