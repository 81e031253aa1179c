package book

import (
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrDuplicateBook 书名已存在
	ErrDuplicateBook = apperrors.New(apperrors.ErrCodeDuplicateBook, "图书已存在")

	// ErrInvalidTitle 书名不能为空
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "数量必须大于0")
)

// NewBookNotFoundError 创建带书名的"图书不存在"错误
func NewBookNotFoundError(title string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "图书《%s》不存在", title)
}

// NewInsufficientStockError 创建库存不足错误
// 错误消息携带书名和当前可用库存,方便操作员直接展示
func NewInsufficientStockError(title string, available int) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
		"图书《%s》库存不足,当前库存:%d", title, available)
}
