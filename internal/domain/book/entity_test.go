package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBook 测试图书工厂方法的校验规则
func TestNewBook(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		b, err := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(499))
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, 5, b.Stock)
		assert.True(t, b.Price.Equal(decimal.NewFromInt(499)))
	})

	t.Run("书名为空应失败", func(t *testing.T) {
		_, err := NewBook("", "Herbert", "Ace", 5, decimal.NewFromInt(499))
		assert.ErrorIs(t, err, ErrInvalidTitle)
	})

	t.Run("负库存应失败", func(t *testing.T) {
		_, err := NewBook("Dune", "Herbert", "Ace", -1, decimal.NewFromInt(499))
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("负价格应失败", func(t *testing.T) {
		_, err := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("零库存零价格允许", func(t *testing.T) {
		b, err := NewBook("Free Pamphlet", "", "", 0, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Stock)
		assert.True(t, b.Price.IsZero())
	})
}

// TestBook_DecrStock 测试库存扣减规则
func TestBook_DecrStock(t *testing.T) {
	t.Run("正常扣减", func(t *testing.T) {
		b, _ := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(499))
		require.NoError(t, b.DecrStock(2))
		assert.Equal(t, 3, b.Stock)
	})

	t.Run("扣减到零允许", func(t *testing.T) {
		b, _ := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(499))
		require.NoError(t, b.DecrStock(5))
		assert.Equal(t, 0, b.Stock)
	})

	t.Run("超出库存应失败且库存不变", func(t *testing.T) {
		b, _ := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(499))
		err := b.DecrStock(6)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "库存不足")
		assert.Equal(t, 5, b.Stock, "失败时库存应保持不变")
	})

	t.Run("数量必须大于0", func(t *testing.T) {
		b, _ := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(499))
		assert.ErrorIs(t, b.DecrStock(0), ErrInvalidQuantity)
		assert.ErrorIs(t, b.DecrStock(-1), ErrInvalidQuantity)
	})
}

// TestBook_SetStockAndPrice 测试库存/价格更新规则
func TestBook_SetStockAndPrice(t *testing.T) {
	b, _ := NewBook("Dune", "Herbert", "Ace", 5, decimal.NewFromInt(499))

	require.NoError(t, b.SetStock(10))
	assert.Equal(t, 10, b.Stock)

	require.NoError(t, b.SetPrice(decimal.NewFromInt(550)))
	assert.True(t, b.Price.Equal(decimal.NewFromInt(550)))

	assert.ErrorIs(t, b.SetStock(-1), ErrInvalidStock)
	assert.ErrorIs(t, b.SetPrice(decimal.NewFromInt(-5)), ErrInvalidPrice)
}
