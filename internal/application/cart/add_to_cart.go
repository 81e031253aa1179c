package cart

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/book"
	"github.com/xiebiao/bookpos/internal/domain/cart"
)

// AddToCartUseCase 加入购物车用例
// 设计说明:
// 1. 先通过库存服务确认图书存在,再把价格快照写入购物车行
// 2. 价格快照在加入时确定,结账时不重新读取
//    (后台改价不影响已在购物车中的行——既有行为,有意保留)
type AddToCartUseCase struct {
	bookService book.Service
	carts       *cart.Manager
}

// NewAddToCartUseCase 创建加入购物车用例
func NewAddToCartUseCase(bookService book.Service, carts *cart.Manager) *AddToCartUseCase {
	return &AddToCartUseCase{
		bookService: bookService,
		carts:       carts,
	}
}

// AddToCartRequest 加入购物车请求DTO
type AddToCartRequest struct {
	SessionID string // 会话ID(由Session中间件签发)
	Title     string // 书名
	Quantity  int    // 购买数量
}

// CartLineItem 购物车行DTO
type CartLineItem struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`      // 加入时的单价快照
	LineTotal string `json:"line_total"` // 行小计
}

// AddToCartResponse 加入购物车响应DTO
// 返回追加后的全部行,方便前端刷新购物车显示
type AddToCartResponse struct {
	Lines []CartLineItem `json:"lines"`
}

// Execute 执行加入购物车用例
// 失败场景:
// - 图书不存在 → ErrBookNotFound
// - 数量<=0 → ErrInvalidQuantity(购物车保持不变)
func (uc *AddToCartUseCase) Execute(ctx context.Context, req AddToCartRequest) (*AddToCartResponse, error) {
	// 1. 确认图书存在并取当前价格
	b, err := uc.bookService.GetBook(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	// 2. 追加购物车行(数量校验在领域层)
	c := uc.carts.GetOrCreate(req.SessionID)
	lines, err := c.AddLine(b.Title, req.Quantity, b.Price)
	if err != nil {
		return nil, err
	}

	// 3. 构建响应DTO
	return &AddToCartResponse{Lines: toCartLineItems(lines)}, nil
}

// toCartLineItems 领域行 → DTO行
func toCartLineItems(lines []cart.Line) []CartLineItem {
	out := make([]CartLineItem, len(lines))
	for i, l := range lines {
		out[i] = CartLineItem{
			Title:     l.Title,
			Quantity:  l.Quantity,
			Price:     l.Price.StringFixed(2),
			LineTotal: l.LineTotal().StringFixed(2),
		}
	}
	return out
}
