package book

import (
	"github.com/shopspring/decimal"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Title是业务唯一标识(单店POS按书名管理库存,创建时保证唯一)
// 2. 价格使用decimal.Decimal(避免浮点数精度问题)
// 3. 字段与库存表的列一一对应(Title/Author/Publisher/Stock/Price),
//    列名和列顺序是持久化契约,实体不携带额外字段
type Book struct {
	Title     string          // 书名(唯一键,区分大小写)
	Author    string          // 作者
	Publisher string          // 出版社
	Stock     int             // 库存数量
	Price     decimal.Decimal // 单价
}

// NewBook 创建新图书(工厂方法)
// 业务规则:
// - 书名不能为空
// - 初始库存不能为负数
// - 价格不能为负数
func NewBook(title, author, publisher string, stock int, price decimal.Decimal) (*Book, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	return &Book{
		Title:     title,
		Author:    author,
		Publisher: publisher,
		Stock:     stock,
		Price:     price,
	}, nil
}

// SetStock 更新库存(领域行为)
// 业务规则:库存不能为负数
func (b *Book) SetStock(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	b.Stock = newStock
	return nil
}

// SetPrice 更新价格(领域行为)
// 业务规则:价格不能为负数
func (b *Book) SetPrice(newPrice decimal.Decimal) error {
	if newPrice.IsNegative() {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	return nil
}

// DecrStock 扣减库存(用于结账)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return NewInsufficientStockError(b.Title, b.Stock)
	}
	b.Stock -= quantity
	return nil
}
