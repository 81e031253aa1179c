// Package csvfile 以CSV文件为后端的表存储
//
// 设计说明:
// 1. 每张表是一个带表头的CSV文件,列名和列顺序是对外契约
// 2. 启动时若文件不存在,创建只有表头的空表;已存在的文件原样加载
// 3. 每次变更整表重写(last-write-wins),不做增量更新/日志
//    ——数据量小,简单优先;这是有意保留的语义
// 4. 单进程单操作员假设下不做文件锁;外部并发修改文件属未定义行为
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// 日期列的时间格式(与小票上的时间格式一致)
const DateLayout = "2006-01-02 15:04:05"

// Table 一张以CSV文件持久化的表
type Table struct {
	path   string
	header []string
}

// NewTable 创建表存储
func NewTable(path string, header []string) *Table {
	return &Table{path: path, header: header}
}

// Path 返回后端文件路径
func (t *Table) Path() string {
	return t.path
}

// Load 读取全部数据行(不含表头)
// 文件不存在时先写出只有表头的空表,返回零行
func (t *Table) Load() ([][]string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := t.Save(nil); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, fmt.Errorf("读取表文件%s失败: %w", t.path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("解析表文件%s失败: %w", t.path, err)
	}

	// 第一行是表头,校验列数避免加载损坏的文件
	if len(records) == 0 {
		return nil, nil
	}
	if len(records[0]) != len(t.header) {
		return nil, fmt.Errorf("表文件%s的列数不匹配: 期望%d列,实际%d列",
			t.path, len(t.header), len(records[0]))
	}

	return records[1:], nil
}

// Save 整表重写(表头+全部数据行)
func (t *Table) Save(rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("创建数据目录失败: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(t.header); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("写入数据行失败: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("序列化表数据失败: %w", err)
	}

	if err := os.WriteFile(t.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入表文件%s失败: %w", t.path, err)
	}
	return nil
}
