package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/xiebiao/bookpos/internal/application/inventory"
	"github.com/xiebiao/bookpos/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookpos/pkg/errors"
	"github.com/xiebiao/bookpos/pkg/response"
)

// BookHandler 库存HTTP处理器
type BookHandler struct {
	addBookUseCase     *appinventory.AddBookUseCase
	updateBookUseCase  *appinventory.UpdateBookUseCase
	removeBookUseCase  *appinventory.RemoveBookUseCase
	listBooksUseCase   *appinventory.ListBooksUseCase
	getBookUseCase     *appinventory.GetBookUseCase
	listTitlesUseCase  *appinventory.ListTitlesUseCase
	listAuthorsUseCase *appinventory.ListAuthorsUseCase
}

// NewBookHandler 创建库存处理器
func NewBookHandler(
	addBookUseCase *appinventory.AddBookUseCase,
	updateBookUseCase *appinventory.UpdateBookUseCase,
	removeBookUseCase *appinventory.RemoveBookUseCase,
	listBooksUseCase *appinventory.ListBooksUseCase,
	getBookUseCase *appinventory.GetBookUseCase,
	listTitlesUseCase *appinventory.ListTitlesUseCase,
	listAuthorsUseCase *appinventory.ListAuthorsUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:     addBookUseCase,
		updateBookUseCase:  updateBookUseCase,
		removeBookUseCase:  removeBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		getBookUseCase:     getBookUseCase,
		listTitlesUseCase:  listTitlesUseCase,
		listAuthorsUseCase: listAuthorsUseCase,
	}
}

// AddBook 新书入库
// @Summary      新书入库
// @Description  新增一本图书(书名唯一,区分大小写)
// @Tags         库存
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "图书已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.addBookUseCase.Execute(c.Request.Context(), appinventory.AddBookRequest{
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		Stock:     req.Stock,
		Price:     req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.SuccessWithMessage(c, "图书已入库", toBookResponse(result))
}

// UpdateBook 修改图书(库存/价格)
// @Summary      修改图书
// @Description  修改库存和/或价格;字段缺省或为负数表示保持不变
// @Tags         库存
// @Accept       json
// @Produce      json
// @Param        title path string true "书名"
// @Param        request body dto.UpdateBookRequest true "修改内容"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{title} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 兼容旧UI契约:-1等负数与字段缺省一样表示"保持不变"
	newStock := req.Stock
	if newStock != nil && *newStock < 0 {
		newStock = nil
	}
	newPrice := req.Price
	if newPrice != nil && newPrice.IsNegative() {
		newPrice = nil
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appinventory.UpdateBookRequest{
		Title:    c.Param("title"),
		NewStock: newStock,
		NewPrice: newPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "图书已更新", toBookResponse(result))
}

// RemoveBook 图书下架
// @Summary      图书下架
// @Description  删除一本图书的库存行(历史销售流水保留)
// @Tags         库存
// @Produce      json
// @Param        title path string true "书名"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{title} [delete]
func (h *BookHandler) RemoveBook(c *gin.Context) {
	if err := h.removeBookUseCase.Execute(c.Request.Context(), c.Param("title")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "图书已下架", nil)
}

// ListBooks 库存列表
// @Summary      库存列表
// @Description  返回全部图书(表内顺序)
// @Tags         库存
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookResponse, len(result.List))
	for i := range result.List {
		list[i] = toBookResponse(&result.List[i])
	}
	response.Success(c, list)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         库存
// @Produce      json
// @Param        title path string true "书名"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{title} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(result))
}

// ListTitles 书名列表
// @Summary      书名列表
// @Description  返回全部书名(表内顺序,用于前端下拉框)
// @Tags         库存
// @Produce      json
// @Success      200 {object} response.Response{data=dto.TitlesResponse}
// @Router       /api/v1/titles [get]
func (h *BookHandler) ListTitles(c *gin.Context) {
	titles, err := h.listTitlesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.TitlesResponse{Titles: titles})
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  返回去重且排序后的作者列表(用于前端下拉框)
// @Tags         库存
// @Produce      json
// @Success      200 {object} response.Response{data=dto.AuthorsResponse}
// @Router       /api/v1/authors [get]
func (h *BookHandler) ListAuthors(c *gin.Context) {
	authors, err := h.listAuthorsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AuthorsResponse{Authors: authors})
}

// toBookResponse 应用层DTO → HTTP DTO
func toBookResponse(item *appinventory.BookItem) dto.BookResponse {
	return dto.BookResponse{
		Title:     item.Title,
		Author:    item.Author,
		Publisher: item.Publisher,
		Stock:     item.Stock,
		Price:     item.Price,
	}
}
