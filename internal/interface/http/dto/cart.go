package dto

// AddToCartRequest HTTP加入购物车请求
// Quantity不加min校验:数量<=0要返回业务错误码(数量不合法),
// 而不是参数绑定错误,方便前端统一提示
type AddToCartRequest struct {
	Title    string `json:"title" binding:"required,max=200" example:"Dune"`
	Quantity int    `json:"quantity" example:"2"`
}

// CartLineResponse HTTP购物车行
type CartLineResponse struct {
	Title     string `json:"title" example:"Dune"`
	Quantity  int    `json:"quantity" example:"2"`
	Price     string `json:"price" example:"499.00"`
	LineTotal string `json:"line_total" example:"998.00"`
}

// CartResponse HTTP购物车响应
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
}

// CartSummaryResponse HTTP购物车摘要响应
type CartSummaryResponse struct {
	Lines []string `json:"lines"`
	Total string   `json:"total" example:"998.00"`
}

// CheckoutResponse HTTP结账响应
type CheckoutResponse struct {
	LineCount   int    `json:"line_count" example:"1"`
	Total       string `json:"total" example:"998.00"`
	Date        string `json:"date" example:"2024-01-15 10:30:00"`
	ReceiptPath string `json:"receipt_path" example:"data/receipt.txt"`
}
