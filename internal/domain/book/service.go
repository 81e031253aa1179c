package book

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// Service 库存领域服务接口
// 设计说明:
// 1. 领域服务封装库存管理的业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 新书入库
	// 业务规则:
	// - 书名不能为空,且不能与现有图书重复(区分大小写精确匹配)
	// - 初始库存>=0,价格>=0
	AddBook(ctx context.Context, title, author, publisher string, stock int, price decimal.Decimal) (*Book, error)

	// UpdateBook 修改图书的库存/价格
	// 业务规则:
	// - newStock/newPrice为nil表示"保持不变"(显式可选值,替代-1哨兵)
	// - 提供的新值仍需满足非负校验
	UpdateBook(ctx context.Context, title string, newStock *int, newPrice *decimal.Decimal) (*Book, error)

	// RemoveBook 图书下架(删除库存行)
	RemoveBook(ctx context.Context, title string) error

	// GetBook 根据书名获取图书
	GetBook(ctx context.Context, title string) (*Book, error)

	// ListBooks 返回全部图书(表内顺序)
	ListBooks(ctx context.Context) ([]*Book, error)

	// ListTitles 返回全部书名(表内顺序,用于前端下拉框)
	ListTitles(ctx context.Context) ([]string, error)

	// ListAuthors 返回去重且排序后的作者列表(空作者排除)
	ListAuthors(ctx context.Context) ([]string, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建库存领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 新书入库
func (s *service) AddBook(ctx context.Context, title, author, publisher string, stock int, price decimal.Decimal) (*Book, error) {
	// 1. 创建图书实体(工厂方法内完成非空/非负校验)
	b, err := NewBook(title, author, publisher, stock, price)
	if err != nil {
		return nil, err
	}

	// 2. 持久化(Repository在书名重复时返回ErrDuplicateBook)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateBook 修改库存/价格
func (s *service) UpdateBook(ctx context.Context, title string, newStock *int, newPrice *decimal.Decimal) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	// 2. 按需更新(nil表示保持不变)
	if newStock != nil {
		if err := b.SetStock(*newStock); err != nil {
			return nil, err
		}
	}
	if newPrice != nil {
		if err := b.SetPrice(*newPrice); err != nil {
			return nil, err
		}
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// RemoveBook 图书下架
func (s *service) RemoveBook(ctx context.Context, title string) error {
	return s.repo.Delete(ctx, title)
}

// GetBook 根据书名获取图书
func (s *service) GetBook(ctx context.Context, title string) (*Book, error) {
	return s.repo.FindByTitle(ctx, title)
}

// ListBooks 返回全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// ListTitles 返回全部书名
func (s *service) ListTitles(ctx context.Context) ([]string, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	return titles, nil
}

// ListAuthors 返回去重且排序后的作者列表
// 用于前端的作者下拉框,空作者(未填写)排除
func (s *service) ListAuthors(ctx context.Context) ([]string, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	authors := make([]string, 0, len(books))
	for _, b := range books {
		if b.Author == "" {
			continue
		}
		if _, ok := seen[b.Author]; ok {
			continue
		}
		seen[b.Author] = struct{}{}
		authors = append(authors, b.Author)
	}

	sort.Strings(authors)
	return authors, nil
}
