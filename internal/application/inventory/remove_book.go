package inventory

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/book"
)

// RemoveBookUseCase 图书下架用例
type RemoveBookUseCase struct {
	bookService book.Service
}

// NewRemoveBookUseCase 创建下架用例
func NewRemoveBookUseCase(bookService book.Service) *RemoveBookUseCase {
	return &RemoveBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行下架用例
// 图书不存在时返回ErrBookNotFound
func (uc *RemoveBookUseCase) Execute(ctx context.Context, title string) error {
	return uc.bookService.RemoveBook(ctx, title)
}
