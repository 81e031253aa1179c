package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	appcheckout "github.com/xiebiao/bookpos/internal/application/checkout"
	"github.com/xiebiao/bookpos/internal/interface/http/dto"
	"github.com/xiebiao/bookpos/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
	"github.com/xiebiao/bookpos/pkg/response"
)

// CheckoutHandler 结账HTTP处理器
// 额外持有小票文件路径,GET /receipt直接回放最近一张小票
type CheckoutHandler struct {
	checkoutUseCase *appcheckout.CheckoutUseCase
	receiptPath     string
}

// NewCheckoutHandler 创建结账处理器
func NewCheckoutHandler(checkoutUseCase *appcheckout.CheckoutUseCase, receiptPath string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		receiptPath:     receiptPath,
	}
}

// Checkout 结账
// @Summary      结账
// @Description  对当前会话购物车做两阶段结账:全量校验通过后落账、生成小票、清空购物车;任一行校验失败则零副作用
// @Tags         结账
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CheckoutResponse}
// @Failure      400 {object} response.Response "购物车是空的 / 库存不足"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	result, err := h.checkoutUseCase.Execute(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "结账成功", dto.CheckoutResponse{
		LineCount:   result.LineCount,
		Total:       result.Total,
		Date:        result.Date,
		ReceiptPath: result.ReceiptPath,
	})
}

// GetReceipt 查看小票
// @Summary      查看小票
// @Description  以纯文本返回最近一次结账生成的小票
// @Tags         结账
// @Produce      plain
// @Success      200 {string} string "小票文本"
// @Failure      404 {object} response.Response "还没有小票"
// @Router       /api/v1/receipt [get]
func (h *CheckoutHandler) GetReceipt(c *gin.Context) {
	if _, err := os.Stat(h.receiptPath); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeNotFound, "还没有小票,请先结账")
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)
	c.File(h.receiptPath)
}
