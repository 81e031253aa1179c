package sales

import (
	"context"

	"github.com/xiebiao/bookpos/internal/domain/sale"
)

// ListSalesUseCase 销售历史查询用例
type ListSalesUseCase struct {
	saleRepo sale.Repository
}

// NewListSalesUseCase 创建销售历史用例
func NewListSalesUseCase(saleRepo sale.Repository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// SaleItem 销售记录DTO
type SaleItem struct {
	Date         string `json:"date"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	PricePerUnit string `json:"price_per_unit"`
	Total        string `json:"total"`
}

// ListSalesResponse 销售历史响应DTO
type ListSalesResponse struct {
	List  []SaleItem `json:"list"`
	Total int        `json:"total"`
}

// Execute 返回全部销售记录(插入顺序,整表返回)
func (uc *ListSalesUseCase) Execute(ctx context.Context) (*ListSalesResponse, error) {
	records, err := uc.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]SaleItem, len(records))
	for i, rec := range records {
		list[i] = SaleItem{
			Date:         rec.Date.Format("2006-01-02 15:04:05"),
			Title:        rec.Title,
			Quantity:     rec.Quantity,
			PricePerUnit: rec.PricePerUnit.StringFixed(2),
			Total:        rec.Total.StringFixed(2),
		}
	}

	return &ListSalesResponse{
		List:  list,
		Total: len(list),
	}, nil
}
