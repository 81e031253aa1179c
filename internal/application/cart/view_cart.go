package cart

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/cart"
)

// ViewCartUseCase 查看购物车用例(只读,无副作用)
type ViewCartUseCase struct {
	carts *cart.Manager
}

// NewViewCartUseCase 创建查看购物车用例
func NewViewCartUseCase(carts *cart.Manager) *ViewCartUseCase {
	return &ViewCartUseCase{carts: carts}
}

// CartSummaryResponse 购物车摘要DTO
type CartSummaryResponse struct {
	Lines []string `json:"lines"` // "{数量} x {书名} @ {单价} = {小计}"
	Total string   `json:"total"` // 合计金额
}

// Execute 返回购物车摘要
// 空购物车返回ErrEmptyCart(软错误,Handler转为"购物车是空的"提示)
func (uc *ViewCartUseCase) Execute(ctx context.Context, sessionID string) (*CartSummaryResponse, error) {
	c := uc.carts.GetOrCreate(sessionID)

	summary, err := c.Summary()
	if err != nil {
		return nil, err
	}

	return &CartSummaryResponse{
		Lines: summary.Lines,
		Total: summary.Total.StringFixed(2),
	}, nil
}
