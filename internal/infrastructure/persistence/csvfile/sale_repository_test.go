package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookpos/internal/domain/sale"
)

// TestSaleRepository_AppendAndReload 追加流水后重新打开,历史应完整保留
func TestSaleRepository_AppendAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sales_history.csv")

	repo, err := NewSaleRepository(path)
	require.NoError(t, err)

	when := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	require.NoError(t, repo.Append(ctx, sale.NewSaleRecord(when, "Dune", 2, decimal.NewFromFloat(499.0))))
	require.NoError(t, repo.Append(ctx, sale.NewSaleRecord(when, "Foundation", 1, decimal.NewFromFloat(250.5))))

	// 模拟进程重启
	reopened, err := NewSaleRepository(path)
	require.NoError(t, err)

	records, err := reopened.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Dune", records[0].Title)
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, "499.00", records[0].PricePerUnit.StringFixed(2))
	assert.Equal(t, "998.00", records[0].Total.StringFixed(2))
	assert.True(t, records[0].Date.Equal(when))

	assert.Equal(t, "Foundation", records[1].Title, "流水按插入顺序保留")
}

// TestSaleRepository_FileFormat 销售表的列名和行格式是对外契约
func TestSaleRepository_FileFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sales_history.csv")

	repo, err := NewSaleRepository(path)
	require.NoError(t, err)

	when := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	require.NoError(t, repo.Append(ctx, sale.NewSaleRecord(when, "Dune", 2, decimal.NewFromFloat(499.0))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Date,Title,Quantity,PricePerUnit,Total\n2024-01-15 10:30:00,Dune,2,499.00,998.00\n",
		string(data))
}

// TestSaleRepository_ListReturnsCopies 返回副本,外部修改不影响流水
func TestSaleRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sales_history.csv")

	repo, err := NewSaleRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, sale.NewSaleRecord(time.Now(), "Dune", 2, decimal.NewFromInt(499))))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	records[0].Quantity = 999

	again, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, again[0].Quantity, "历史流水不可被外部修改")
}
