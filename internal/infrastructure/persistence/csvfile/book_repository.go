package csvfile

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookpos/internal/domain/book"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
)

// 库存表的列(列名和列顺序是持久化契约)
var inventoryHeader = []string{"Title", "Author", "Publisher", "Stock", "Price"}

// bookRepository 图书仓储实现(CSV整表重写)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 启动时整表加载进内存,每次写操作修改内存后整表落盘
// 3. 落盘失败时回滚内存变更,保证内存表与文件一致
// 4. 互斥锁保护内存表(HTTP层天然并发)
type bookRepository struct {
	mu    sync.Mutex
	table *Table
	books []*book.Book // 内存表(表内顺序)
}

// NewBookRepository 创建图书仓储并加载库存表
// 文件不存在时创建只有表头的空表
func NewBookRepository(path string) (book.Repository, error) {
	table := NewTable(path, inventoryHeader)
	rows, err := table.Load()
	if err != nil {
		return nil, apperrors.Wrap(err, "加载库存表失败")
	}

	books := make([]*book.Book, 0, len(rows))
	for _, row := range rows {
		b, err := rowToBook(row)
		if err != nil {
			return nil, apperrors.Wrapf(err, "库存表%s存在非法行", path)
		}
		books = append(books, b)
	}

	log.Info().Str("path", path).Int("rows", len(books)).Msg("库存表加载完成")

	return &bookRepository{table: table, books: books}, nil
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 书名唯一性校验(区分大小写精确匹配)
	if r.indexOf(b.Title) >= 0 {
		return book.ErrDuplicateBook
	}

	r.books = append(r.books, cloneBook(b))
	if err := r.persist(); err != nil {
		// 回滚追加,内存表保持与文件一致
		r.books = r.books[:len(r.books)-1]
		return err
	}
	return nil
}

// FindByTitle 根据书名查找图书
// 返回副本:调用方对实体的修改只有通过Update才会生效
func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(title)
	if idx < 0 {
		return nil, book.ErrBookNotFound
	}
	return cloneBook(r.books[idx]), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(b.Title)
	if idx < 0 {
		return book.ErrBookNotFound
	}

	old := r.books[idx]
	r.books[idx] = cloneBook(b)
	if err := r.persist(); err != nil {
		r.books[idx] = old
		return err
	}
	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(title)
	if idx < 0 {
		return book.ErrBookNotFound
	}

	old := r.books
	next := make([]*book.Book, 0, len(old)-1)
	next = append(next, old[:idx]...)
	next = append(next, old[idx+1:]...)

	r.books = next
	if err := r.persist(); err != nil {
		r.books = old
		return err
	}
	return nil
}

// List 返回全部图书(表内顺序)
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*book.Book, len(r.books))
	for i, b := range r.books {
		out[i] = cloneBook(b)
	}
	return out, nil
}

// DeductStock 批量扣减库存
// 整个批次在内存副本上全部生效后才整表落盘一次;
// 任何一条失败或落盘失败,内存表都保持原状(全有或全无)
func (r *bookRepository) DeductStock(ctx context.Context, deductions []book.StockDeduction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 在副本上应用全部扣减
	next := make([]*book.Book, len(r.books))
	for i, b := range r.books {
		next[i] = cloneBook(b)
	}

	for _, d := range deductions {
		idx := indexOfTitle(next, d.Title)
		if idx < 0 {
			return book.NewBookNotFoundError(d.Title)
		}
		if err := next[idx].DecrStock(d.Quantity); err != nil {
			return err
		}
	}

	old := r.books
	r.books = next
	if err := r.persist(); err != nil {
		r.books = old
		log.Warn().Err(err).Msg("库存表落盘失败,已回滚内存扣减")
		return err
	}
	return nil
}

// persist 整表落盘(调用方必须已持有锁)
func (r *bookRepository) persist() error {
	rows := make([][]string, len(r.books))
	for i, b := range r.books {
		rows[i] = []string{
			b.Title,
			b.Author,
			b.Publisher,
			strconv.Itoa(b.Stock),
			b.Price.StringFixed(2),
		}
	}
	if err := r.table.Save(rows); err != nil {
		return apperrors.Wrap(err, "保存库存表失败")
	}
	return nil
}

// indexOf 查找书名在内存表中的下标(调用方必须已持有锁)
func (r *bookRepository) indexOf(title string) int {
	return indexOfTitle(r.books, title)
}

func indexOfTitle(books []*book.Book, title string) int {
	for i, b := range books {
		if b.Title == title {
			return i
		}
	}
	return -1
}

// rowToBook 数据行 → 领域实体
func rowToBook(row []string) (*book.Book, error) {
	stock, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(row[4])
	if err != nil {
		return nil, err
	}
	return &book.Book{
		Title:     row[0],
		Author:    row[1],
		Publisher: row[2],
		Stock:     stock,
		Price:     price,
	}, nil
}

// cloneBook 复制实体(内存表与调用方互不共享可变状态)
func cloneBook(b *book.Book) *book.Book {
	copied := *b
	return &copied
}
