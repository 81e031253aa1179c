// Package receipt 小票生成
//
// 设计说明:
// 1. 小票是固定路径的文本文件,每次结账成功后整体重写(覆盖上一张)
// 2. 纯格式化:输入(购物车行+合计)到字节的映射,不含业务逻辑
// 3. 行格式沿用既有单据格式:"{数量} x {书名} @ {单价}"
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookpos/internal/domain/cart"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
)

// 小票上的时间格式(与销售表的Date列一致)
const dateLayout = "2006-01-02 15:04:05"

// TextGenerator 文本小票生成器
type TextGenerator struct {
	path string
}

// NewTextGenerator 创建小票生成器
func NewTextGenerator(path string) *TextGenerator {
	return &TextGenerator{path: path}
}

// Write 渲染小票并写入固定路径(覆盖旧文件),返回文件路径
func (g *TextGenerator) Write(lines []cart.Line, total decimal.Decimal, when time.Time) (string, error) {
	var sb strings.Builder
	sb.WriteString("Bookstore Receipt\n")
	sb.WriteString(fmt.Sprintf("Date: %s\n", when.Format(dateLayout)))
	sb.WriteString("\n")

	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("%d x %s @ %s\n", l.Quantity, l.Title, l.Price.StringFixed(2)))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total Amount: %s\n", total.StringFixed(2)))

	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return "", apperrors.Wrap(err, "创建小票目录失败")
	}
	if err := os.WriteFile(g.path, []byte(sb.String()), 0o644); err != nil {
		return "", apperrors.Wrap(err, "写入小票失败")
	}
	return g.path, nil
}

// Path 返回小票文件路径
func (g *TextGenerator) Path() string {
	return g.path
}
