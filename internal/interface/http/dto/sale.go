package dto

// SaleRecordResponse HTTP销售记录
type SaleRecordResponse struct {
	Date         string `json:"date" example:"2024-01-15 10:30:00"`
	Title        string `json:"title" example:"Dune"`
	Quantity     int    `json:"quantity" example:"2"`
	PricePerUnit string `json:"price_per_unit" example:"499.00"`
	Total        string `json:"total" example:"998.00"`
}

// SalesHistoryResponse HTTP销售历史响应(插入顺序)
type SalesHistoryResponse struct {
	List  []SaleRecordResponse `json:"list"`
	Total int                  `json:"total" example:"1"`
}
