package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/xiebiao/bookpos/internal/application/sales"
	"github.com/xiebiao/bookpos/internal/interface/http/dto"
	"github.com/xiebiao/bookpos/pkg/response"
)

// SaleHandler 销售历史HTTP处理器
type SaleHandler struct {
	listSalesUseCase *appsales.ListSalesUseCase
}

// NewSaleHandler 创建销售历史处理器
func NewSaleHandler(listSalesUseCase *appsales.ListSalesUseCase) *SaleHandler {
	return &SaleHandler{listSalesUseCase: listSalesUseCase}
}

// ListSales 销售历史
// @Summary      销售历史
// @Description  按插入顺序返回全部销售流水
// @Tags         销售
// @Produce      json
// @Success      200 {object} response.Response{data=dto.SalesHistoryResponse}
// @Router       /api/v1/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	result, err := h.listSalesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.SaleRecordResponse, len(result.List))
	for i, rec := range result.List {
		list[i] = dto.SaleRecordResponse{
			Date:         rec.Date,
			Title:        rec.Title,
			Quantity:     rec.Quantity,
			PricePerUnit: rec.PricePerUnit,
			Total:        rec.Total,
		}
	}
	response.Success(c, dto.SalesHistoryResponse{
		List:  list,
		Total: result.Total,
	})
}
