package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Line 购物车行(待购条目)
// 设计说明:
// 1. Price是加入购物车时的价格快照,结账时不重新读取库存价
//    (即使后台在结账前改价,仍按加入时的价格结算——这是既有行为,有意保留)
// 2. 不直接引用Book实体,只保存书名(避免跨聚合引用)
type Line struct {
	Title    string          // 书名
	Quantity int             // 购买数量
	Price    decimal.Decimal // 加入时的单价快照
}

// LineTotal 行小计 = 数量 × 单价快照
func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart 购物车(会话级,进程内,不持久化)
// 设计说明:
// 1. 每个会话一个购物车,由Manager按会话ID管理
// 2. 进程启动时为空;结账成功后清空;其余操作只追加
// 3. 内部加锁:HTTP层天然并发,同一会话可能并行请求
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New 创建空购物车
func New() *Cart {
	return &Cart{}
}

// AddLine 追加一行
// 业务规则:数量必须大于0,校验失败时购物车保持不变
// 返回追加后的全部行(副本),方便前端刷新显示
func (c *Cart) AddLine(title string, quantity int, price decimal.Decimal) ([]Line, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, Line{
		Title:    title,
		Quantity: quantity,
		Price:    price,
	})
	return c.copyLines(), nil
}

// Lines 返回当前全部行(副本,按加入顺序)
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLines()
}

// IsEmpty 是否为空
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Clear 清空购物车(仅由结账成功时调用)
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Summary 购物车摘要(只读,无副作用)
// 空购物车返回ErrEmptyCart(软错误,由调用方转为"购物车是空的"提示)
func (c *Cart) Summary() (*Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}

	summary := &Summary{
		Lines: make([]string, len(c.lines)),
		Total: decimal.Zero,
	}
	for i, l := range c.lines {
		lineTotal := l.LineTotal()
		summary.Lines[i] = fmt.Sprintf("%d x %s @ %s = %s",
			l.Quantity, l.Title, l.Price.StringFixed(2), lineTotal.StringFixed(2))
		summary.Total = summary.Total.Add(lineTotal)
	}
	return summary, nil
}

// copyLines 复制行切片(调用方必须已持有锁)
func (c *Cart) copyLines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Summary 购物车摘要
type Summary struct {
	Lines []string        // 格式化后的行:"{数量} x {书名} @ {单价} = {小计}"
	Total decimal.Decimal // 合计金额
}
