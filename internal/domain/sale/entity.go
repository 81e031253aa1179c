package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord 销售记录(只追加的历史流水)
// 设计说明:
// 1. 一行对应一条已完成的销售明细,写入后不可修改
// 2. PricePerUnit是成交时的单价快照(可能与当前库存价不同)
// 3. 字段与销售表的列一一对应(Date/Title/Quantity/PricePerUnit/Total)
// 4. Title按书名弱引用图书,不做外键约束(图书删除后流水仍保留)
type SaleRecord struct {
	Date         time.Time       // 成交时间
	Title        string          // 书名
	Quantity     int             // 销售数量
	PricePerUnit decimal.Decimal // 成交单价
	Total        decimal.Decimal // 小计 = Quantity × PricePerUnit
}

// NewSaleRecord 创建销售记录(工厂方法)
// Total由数量和单价计算得出,不由调用方传入(防止金额不一致)
func NewSaleRecord(date time.Time, title string, quantity int, pricePerUnit decimal.Decimal) *SaleRecord {
	return &SaleRecord{
		Date:         date,
		Title:        title,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Total:        pricePerUnit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
