package inventory

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/book"
)

// ListAuthorsUseCase 作者列表查询用例
// 用于前端的作者下拉框(去重、排序、排除未填写的作者)
type ListAuthorsUseCase struct {
	bookService book.Service
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(bookService book.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{
		bookService: bookService,
	}
}

// Execute 返回去重且排序后的作者列表
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]string, error) {
	return uc.bookService.ListAuthors(ctx)
}
