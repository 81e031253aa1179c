package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_LoadCreatesEmptyTable 文件不存在时创建只有表头的空表
func TestTable_LoadCreatesEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books_inventory.csv")
	table := NewTable(path, []string{"Title", "Author", "Publisher", "Stock", "Price"})

	rows, err := table.Load()
	require.NoError(t, err)
	assert.Empty(t, rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Load应该已创建文件")
	assert.Equal(t, "Title,Author,Publisher,Stock,Price\n", string(data))
}

// TestTable_SaveAndLoad 整表写入后读回
func TestTable_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	table := NewTable(path, []string{"Title", "Stock"})

	rows := [][]string{
		{"Dune", "5"},
		{"书名,带逗号", "3"},
		{"带\"引号\"的书", "1"},
	}
	require.NoError(t, table.Save(rows))

	loaded, err := table.Load()
	require.NoError(t, err)
	assert.Equal(t, rows, loaded, "逗号和引号应该被CSV转义正确保留")
}

// TestTable_LoadRejectsWrongHeader 列数不匹配的文件拒绝加载
func TestTable_LoadRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B,C\n1,2,3\n"), 0o644))

	table := NewTable(path, []string{"A", "B"})
	_, err := table.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "列数不匹配")
}

// TestTable_SaveCreatesDataDir 数据目录不存在时自动创建
func TestTable_SaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "table.csv")
	table := NewTable(path, []string{"A"})

	require.NoError(t, table.Save([][]string{{"1"}}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
