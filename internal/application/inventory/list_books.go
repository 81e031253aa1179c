package inventory

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/book"
)

// ListBooksUseCase 库存列表查询用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// BookItem 图书列表项DTO
type BookItem struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Stock     int    `json:"stock"`
	Price     string `json:"price"` // 两位小数的字符串,方便前端直接显示
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List  []BookItem `json:"list"`
	Total int        `json:"total"`
}

// Execute 执行列表查询用例(表内顺序,整表返回)
// 单店库存量小,不做分页
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]BookItem, len(books))
	for i, b := range books {
		list[i] = toBookItem(b)
	}

	return &ListBooksResponse{
		List:  list,
		Total: len(list),
	}, nil
}

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute 根据书名查询图书详情
func (uc *GetBookUseCase) Execute(ctx context.Context, title string) (*BookItem, error) {
	b, err := uc.bookService.GetBook(ctx, title)
	if err != nil {
		return nil, err
	}

	item := toBookItem(b)
	return &item, nil
}

// toBookItem 领域实体 → 列表项DTO
func toBookItem(b *book.Book) BookItem {
	return BookItem{
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Stock:     b.Stock,
		Price:     b.Price.StringFixed(2),
	}
}
