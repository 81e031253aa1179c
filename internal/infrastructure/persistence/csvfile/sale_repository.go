package csvfile

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookpos/internal/domain/sale"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
)

// 销售表的列(列名和列顺序是持久化契约)
var salesHeader = []string{"Date", "Title", "Quantity", "PricePerUnit", "Total"}

// saleRepository 销售流水仓储实现(CSV整表重写,只追加)
// 设计说明:
// 1. 流水只追加:内存中的历史行永不修改,行数只增不减
// 2. 每次Append后整表落盘;落盘失败时回滚本次追加
type saleRepository struct {
	mu      sync.Mutex
	table   *Table
	records []*sale.SaleRecord // 插入顺序
}

// NewSaleRepository 创建销售流水仓储并加载销售表
func NewSaleRepository(path string) (sale.Repository, error) {
	table := NewTable(path, salesHeader)
	rows, err := table.Load()
	if err != nil {
		return nil, apperrors.Wrap(err, "加载销售表失败")
	}

	records := make([]*sale.SaleRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := rowToSaleRecord(row)
		if err != nil {
			return nil, apperrors.Wrapf(err, "销售表%s存在非法行", path)
		}
		records = append(records, rec)
	}

	log.Info().Str("path", path).Int("rows", len(records)).Msg("销售表加载完成")

	return &saleRepository{table: table, records: records}, nil
}

// Append 追加一条销售记录并持久化
func (r *saleRepository) Append(ctx context.Context, record *sale.SaleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.records = append(r.records, &copied)
	if err := r.persist(); err != nil {
		r.records = r.records[:len(r.records)-1]
		return err
	}
	return nil
}

// ListAll 返回全部销售记录(插入顺序)
func (r *saleRepository) ListAll(ctx context.Context) ([]*sale.SaleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*sale.SaleRecord, len(r.records))
	for i, rec := range r.records {
		copied := *rec
		out[i] = &copied
	}
	return out, nil
}

// persist 整表落盘(调用方必须已持有锁)
func (r *saleRepository) persist() error {
	rows := make([][]string, len(r.records))
	for i, rec := range r.records {
		rows[i] = []string{
			rec.Date.Format(DateLayout),
			rec.Title,
			strconv.Itoa(rec.Quantity),
			rec.PricePerUnit.StringFixed(2),
			rec.Total.StringFixed(2),
		}
	}
	if err := r.table.Save(rows); err != nil {
		return apperrors.Wrap(err, "保存销售表失败")
	}
	return nil
}

// rowToSaleRecord 数据行 → 领域实体
func rowToSaleRecord(row []string) (*sale.SaleRecord, error) {
	date, err := time.ParseInLocation(DateLayout, row[0], time.Local)
	if err != nil {
		return nil, err
	}
	quantity, err := strconv.Atoi(row[2])
	if err != nil {
		return nil, err
	}
	pricePerUnit, err := decimal.NewFromString(row[3])
	if err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(row[4])
	if err != nil {
		return nil, err
	}
	return &sale.SaleRecord{
		Date:         date,
		Title:        row[1],
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Total:        total,
	}, nil
}
