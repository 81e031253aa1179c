package receipt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookpos/internal/domain/cart"
)

// TestTextGenerator_Write 测试小票格式
func TestTextGenerator_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.txt")
	gen := NewTextGenerator(path)

	lines := []cart.Line{
		{Title: "Dune", Quantity: 2, Price: decimal.NewFromFloat(499.0)},
		{Title: "Foundation", Quantity: 1, Price: decimal.NewFromFloat(250.5)},
	}
	when := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)

	got, err := gen.Write(lines, decimal.NewFromFloat(1248.5), when)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "Bookstore Receipt\n" +
		"Date: 2024-01-15 10:30:00\n" +
		"\n" +
		"2 x Dune @ 499.00\n" +
		"1 x Foundation @ 250.50\n" +
		"\n" +
		"Total Amount: 1248.50\n"
	assert.Equal(t, expected, string(data))
}

// TestTextGenerator_Overwrite 新小票覆盖旧小票
func TestTextGenerator_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.txt")
	gen := NewTextGenerator(path)
	when := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)

	_, err := gen.Write([]cart.Line{{Title: "Dune", Quantity: 2, Price: decimal.NewFromInt(499)}},
		decimal.NewFromInt(998), when)
	require.NoError(t, err)

	_, err = gen.Write([]cart.Line{{Title: "Foundation", Quantity: 1, Price: decimal.NewFromInt(250)}},
		decimal.NewFromInt(250), when)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Dune", "旧小票内容应该被完全覆盖")
	assert.Contains(t, string(data), "1 x Foundation @ 250.00")
}

// TestTextGenerator_CreatesDir 小票目录不存在时自动创建
func TestTextGenerator_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "receipt.txt")
	gen := NewTextGenerator(path)

	_, err := gen.Write(nil, decimal.Zero, time.Now())
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
