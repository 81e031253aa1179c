package checkout

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookpos/internal/domain/book"
	"github.com/xiebiao/bookpos/internal/domain/cart"
	"github.com/xiebiao/bookpos/internal/domain/sale"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
	"github.com/xiebiao/bookpos/pkg/metrics"
)

// ReceiptWriter 小票输出端口(在使用方定义接口,基础设施层实现)
type ReceiptWriter interface {
	// Write 渲染小票并写入固定路径(覆盖旧小票),返回文件路径
	Write(lines []cart.Line, total decimal.Decimal, when time.Time) (string, error)
}

// CheckoutUseCase 结账用例
// 设计说明:这是整个系统最核心的用例
// 两阶段执行,对调用方不可见中间状态:
//
// 阶段1(校验):对整个购物车做全量校验,任何一行失败则立即中止,
// 库存表、销售表、购物车全部保持原状(零副作用)。
// 注意同一书名可能出现在多行:校验的是"该书在全车的合计需求量",
// 否则两行各自通过校验、合并后超过库存,会把库存扣成负数。
//
// 阶段2(落账):只有全量校验通过才会进入。按购物车行顺序逐行
// 追加销售记录(流水每次追加即落盘),库存扣减作为一个批次应用,
// 整表一次性落盘;随后重新生成小票并清空购物车。
type CheckoutUseCase struct {
	bookRepo book.Repository
	saleRepo sale.Repository
	receipts ReceiptWriter
	carts    *cart.Manager
	now      func() time.Time
}

// NewCheckoutUseCase 创建结账用例
func NewCheckoutUseCase(
	bookRepo book.Repository,
	saleRepo sale.Repository,
	receipts ReceiptWriter,
	carts *cart.Manager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		bookRepo: bookRepo,
		saleRepo: saleRepo,
		receipts: receipts,
		carts:    carts,
		now:      time.Now,
	}
}

// CheckoutResponse 结账响应DTO
type CheckoutResponse struct {
	LineCount   int    `json:"line_count"`   // 成交行数
	Total       string `json:"total"`        // 合计金额
	Date        string `json:"date"`         // 成交时间
	ReceiptPath string `json:"receipt_path"` // 小票文件路径
}

// Execute 执行结账用例
// 失败场景:
// - 空购物车 → ErrEmptyCart(软错误,无任何表写入)
// - 某行图书已不存在 → ErrBookNotFound(零副作用)
// - 合计需求量超过库存 → ErrInsufficientStock(零副作用)
func (uc *CheckoutUseCase) Execute(ctx context.Context, sessionID string) (*CheckoutResponse, error) {
	c := uc.carts.GetOrCreate(sessionID)
	lines := c.Lines()

	// 空购物车:区别于真正的失败,不计入结账失败指标
	if len(lines) == 0 {
		metrics.RecordCheckout("empty")
		return nil, cart.ErrEmptyCart
	}

	// ========================================
	// 阶段1:全量校验(零副作用)
	// ========================================
	// 按书名聚合全车需求量,保持首次出现的行顺序
	// (报错时按购物车顺序报第一本不满足的书)
	titleOrder := make([]string, 0, len(lines))
	required := make(map[string]int, len(lines))
	for _, l := range lines {
		if _, ok := required[l.Title]; !ok {
			titleOrder = append(titleOrder, l.Title)
		}
		required[l.Title] += l.Quantity
	}

	for _, title := range titleOrder {
		b, err := uc.bookRepo.FindByTitle(ctx, title)
		if err != nil {
			metrics.RecordCheckout("failed")
			if apperrors.HasCode(err, apperrors.ErrCodeBookNotFound) {
				return nil, book.NewBookNotFoundError(title)
			}
			return nil, err
		}
		if required[title] > b.Stock {
			metrics.RecordCheckout("failed")
			return nil, book.NewInsufficientStockError(title, b.Stock)
		}
	}

	// ========================================
	// 阶段2:落账(校验已全部通过)
	// ========================================
	when := uc.now()
	total := decimal.Zero
	deductions := make([]book.StockDeduction, len(lines))

	// 按购物车行顺序追加销售流水,单价用加入购物车时的快照
	for i, l := range lines {
		record := sale.NewSaleRecord(when, l.Title, l.Quantity, l.Price)
		if err := uc.saleRepo.Append(ctx, record); err != nil {
			metrics.RecordCheckout("failed")
			return nil, err
		}
		total = total.Add(record.Total)
		deductions[i] = book.StockDeduction{Title: l.Title, Quantity: l.Quantity}
	}

	// 库存扣减作为一个批次提交,整表一次性落盘
	// (落盘失败时仓储内部回滚内存扣减;已追加的流水不回收,流水不可变)
	if err := uc.bookRepo.DeductStock(ctx, deductions); err != nil {
		metrics.RecordCheckout("failed")
		return nil, err
	}

	// 重新生成小票(覆盖上一张)
	// 小票失败不回退交易:库存与流水已经落账,只记日志并继续
	receiptPath, err := uc.receipts.Write(lines, total, when)
	if err != nil {
		log.Error().Err(err).Msg("小票生成失败,交易已落账")
		receiptPath = ""
	}

	// 清空购物车(只有结账成功才会走到这里)
	c.Clear()

	metrics.RecordCheckout("success")
	metrics.AddSaleAmount(total.InexactFloat64())

	log.Info().
		Int("lines", len(lines)).
		Str("total", total.StringFixed(2)).
		Msg("结账成功")

	return &CheckoutResponse{
		LineCount:   len(lines),
		Total:       total.StringFixed(2),
		Date:        when.Format("2006-01-02 15:04:05"),
		ReceiptPath: receiptPath,
	}, nil
}
