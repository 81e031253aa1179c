package dto

import (
	"github.com/shopspring/decimal"
)

// AddBookRequest HTTP入库请求
// validator tag说明:
// - required: 必填字段
// - max: 字符串长度上限
// 库存/价格的非负校验在领域层完成(返回业务错误码而非绑定错误)
type AddBookRequest struct {
	Title     string          `json:"title" binding:"required,max=200" example:"Dune"`
	Author    string          `json:"author" binding:"max=100" example:"Herbert"`
	Publisher string          `json:"publisher" binding:"max=100" example:"Ace"`
	Stock     int             `json:"stock" example:"5"`
	Price     decimal.Decimal `json:"price" example:"499.0"`
}

// UpdateBookRequest HTTP修改请求(库存/价格)
// 设计说明:
// 1. 字段缺省(null)表示"保持不变"——显式可选值
// 2. 兼容旧UI契约:传-1等负数同样按"保持不变"处理(由Handler映射)
type UpdateBookRequest struct {
	Stock *int             `json:"stock" example:"10"`
	Price *decimal.Decimal `json:"price" example:"550.0"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	Title     string `json:"title" example:"Dune"`
	Author    string `json:"author" example:"Herbert"`
	Publisher string `json:"publisher" example:"Ace"`
	Stock     int    `json:"stock" example:"5"`
	Price     string `json:"price" example:"499.00"`
}

// AuthorsResponse HTTP作者列表响应(去重、排序)
type AuthorsResponse struct {
	Authors []string `json:"authors"`
}

// TitlesResponse HTTP书名列表响应(表内顺序)
type TitlesResponse struct {
	Titles []string `json:"titles"`
}
