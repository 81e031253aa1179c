package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookpos/internal/application/cart"
	"github.com/xiebiao/bookpos/internal/interface/http/dto"
	"github.com/xiebiao/bookpos/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
	"github.com/xiebiao/bookpos/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	addToCartUseCase *appcart.AddToCartUseCase
	viewCartUseCase  *appcart.ViewCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addToCartUseCase *appcart.AddToCartUseCase,
	viewCartUseCase *appcart.ViewCartUseCase,
) *CartHandler {
	return &CartHandler{
		addToCartUseCase: addToCartUseCase,
		viewCartUseCase:  viewCartUseCase,
	}
}

// AddToCart 加入购物车
// @Summary      加入购物车
// @Description  把一本图书按数量加入当前会话的购物车,单价取加入时的快照
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.AddToCartRequest true "书名与数量"
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Failure      400 {object} response.Response "数量不合法"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例(数量校验在领域层,返回业务错误码)
	result, err := h.addToCartUseCase.Execute(c.Request.Context(), appcart.AddToCartRequest{
		SessionID: middleware.GetSessionID(c),
		Title:     req.Title,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	lines := make([]dto.CartLineResponse, len(result.Lines))
	for i, l := range result.Lines {
		lines[i] = dto.CartLineResponse{
			Title:     l.Title,
			Quantity:  l.Quantity,
			Price:     l.Price,
			LineTotal: l.LineTotal,
		}
	}
	response.SuccessWithMessage(c, "已加入购物车", dto.CartResponse{Lines: lines})
}

// ViewCart 查看购物车
// @Summary      查看购物车
// @Description  返回当前会话购物车的行摘要与合计;空购物车返回业务提示
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CartSummaryResponse}
// @Failure      400 {object} response.Response "购物车是空的"
// @Router       /api/v1/cart [get]
func (h *CartHandler) ViewCart(c *gin.Context) {
	result, err := h.viewCartUseCase.Execute(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		// 空购物车是软错误,前端按code=40003提示即可
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CartSummaryResponse{
		Lines: result.Lines,
		Total: result.Total,
	})
}
