package cart

import (
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "请输入有效的购买数量")

	// ErrEmptyCart 购物车为空
	// 软错误:不是真正的失败,只是一个需要特殊展示的空状态
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "购物车是空的")
)
