package inventory

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/book"
)

// ListTitlesUseCase 书名列表用例(用于前端的图书下拉框)
type ListTitlesUseCase struct {
	bookService book.Service
}

// NewListTitlesUseCase 创建书名列表用例
func NewListTitlesUseCase(bookService book.Service) *ListTitlesUseCase {
	return &ListTitlesUseCase{bookService: bookService}
}

// Execute 返回全部书名(表内顺序,不排序)
func (uc *ListTitlesUseCase) Execute(ctx context.Context) ([]string, error) {
	return uc.bookService.ListTitles(ctx)
}
