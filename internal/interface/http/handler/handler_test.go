package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcart "github.com/xiebiao/bookpos/internal/application/cart"
	appcheckout "github.com/xiebiao/bookpos/internal/application/checkout"
	appinventory "github.com/xiebiao/bookpos/internal/application/inventory"
	appsales "github.com/xiebiao/bookpos/internal/application/sales"
	"github.com/xiebiao/bookpos/internal/domain/book"
	"github.com/xiebiao/bookpos/internal/domain/cart"
	"github.com/xiebiao/bookpos/internal/infrastructure/persistence/csvfile"
	"github.com/xiebiao/bookpos/internal/infrastructure/receipt"
	"github.com/xiebiao/bookpos/internal/interface/http/middleware"
)

// Handler层测试:用真实仓储(临时目录)把整条HTTP链路在进程内跑通,
// 重点验证统一响应信封的业务错误码

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	bookRepo, err := csvfile.NewBookRepository(filepath.Join(dir, "books_inventory.csv"))
	require.NoError(t, err)
	saleRepo, err := csvfile.NewSaleRepository(filepath.Join(dir, "sales_history.csv"))
	require.NoError(t, err)
	receiptPath := filepath.Join(dir, "receipt.txt")

	bookService := book.NewService(bookRepo)
	carts := cart.NewManager()

	bookHandler := NewBookHandler(
		appinventory.NewAddBookUseCase(bookService),
		appinventory.NewUpdateBookUseCase(bookService),
		appinventory.NewRemoveBookUseCase(bookService),
		appinventory.NewListBooksUseCase(bookService),
		appinventory.NewGetBookUseCase(bookService),
		appinventory.NewListTitlesUseCase(bookService),
		appinventory.NewListAuthorsUseCase(bookService),
	)
	cartHandler := NewCartHandler(
		appcart.NewAddToCartUseCase(bookService, carts),
		appcart.NewViewCartUseCase(carts),
	)
	checkoutHandler := NewCheckoutHandler(
		appcheckout.NewCheckoutUseCase(bookRepo, saleRepo, receipt.NewTextGenerator(receiptPath), carts),
		receiptPath,
	)
	saleHandler := NewSaleHandler(appsales.NewListSalesUseCase(saleRepo))

	r := gin.New()
	r.Use(middleware.Session())
	v1 := r.Group("/api/v1")
	{
		v1.POST("/books", bookHandler.AddBook)
		v1.GET("/books", bookHandler.ListBooks)
		v1.GET("/books/:title", bookHandler.GetBook)
		v1.PUT("/books/:title", bookHandler.UpdateBook)
		v1.DELETE("/books/:title", bookHandler.RemoveBook)
		v1.GET("/titles", bookHandler.ListTitles)
		v1.GET("/authors", bookHandler.ListAuthors)
		v1.POST("/cart/items", cartHandler.AddToCart)
		v1.GET("/cart", cartHandler.ViewCart)
		v1.POST("/checkout", checkoutHandler.Checkout)
		v1.GET("/receipt", checkoutHandler.GetReceipt)
		v1.GET("/sales", saleHandler.ListSales)
	}
	return r
}

// do 发送一个请求;cookies带上此前响应签发的会话Cookie
func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) (*envelope, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "响应不是统一信封: %s", rec.Body.String())
	return &env, rec
}

func addBook(t *testing.T, r *gin.Engine, title string, stock int, price float64) {
	t.Helper()
	env, _ := do(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title": title, "author": "Herbert", "publisher": "Ace",
		"stock": stock, "price": price,
	}, nil)
	require.Equal(t, 0, env.Code, "入库失败: %s", env.Message)
}

// TestBookHandler_AddAndGet 入库与查询
func TestBookHandler_AddAndGet(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "Dune", 5, 499.0)

	env, _ := do(t, r, http.MethodGet, "/api/v1/books/Dune", nil, nil)
	require.Equal(t, 0, env.Code)

	var data struct {
		Title string `json:"title"`
		Stock int    `json:"stock"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Dune", data.Title)
	assert.Equal(t, 5, data.Stock)
	assert.Equal(t, "499.00", data.Price)
}

// TestBookHandler_Duplicate 重复书名返回业务错误码
func TestBookHandler_Duplicate(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "Dune", 5, 499.0)

	env, rec := do(t, r, http.MethodPost, "/api/v1/books", map[string]interface{}{
		"title": "Dune", "stock": 1, "price": 100.0,
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "业务错误也走200+信封")
	assert.Equal(t, 40002, env.Code)
}

// TestBookHandler_UpdateSentinel 负数与缺省都表示保持不变
func TestBookHandler_UpdateSentinel(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "Dune", 5, 499.0)

	env, _ := do(t, r, http.MethodPut, "/api/v1/books/Dune", map[string]interface{}{
		"stock": -1, "price": 550.0,
	}, nil)
	require.Equal(t, 0, env.Code, "修改失败: %s", env.Message)

	var data struct {
		Stock int    `json:"stock"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 5, data.Stock, "-1应保持库存不变")
	assert.Equal(t, "550.00", data.Price)
}

// TestBookHandler_TitlesAndAuthors 下拉框数据源
func TestBookHandler_TitlesAndAuthors(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "Dune", 5, 499.0)
	addBook(t, r, "Foundation", 3, 250.0)

	env, _ := do(t, r, http.MethodGet, "/api/v1/titles", nil, nil)
	require.Equal(t, 0, env.Code)
	var titles struct {
		Titles []string `json:"titles"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &titles))
	assert.Equal(t, []string{"Dune", "Foundation"}, titles.Titles)

	env, _ = do(t, r, http.MethodGet, "/api/v1/authors", nil, nil)
	require.Equal(t, 0, env.Code)
	var authors struct {
		Authors []string `json:"authors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &authors))
	assert.Equal(t, []string{"Herbert"}, authors.Authors)
}

// TestCheckoutHandler_FullFlow 加购到结账的完整链路(同一会话Cookie)
func TestCheckoutHandler_FullFlow(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "Dune", 5, 499.0)

	// 第一个请求拿到会话Cookie,后续请求带着它
	env, rec := do(t, r, http.MethodPost, "/api/v1/cart/items", map[string]interface{}{
		"title": "Dune", "quantity": 2,
	}, nil)
	require.Equal(t, 0, env.Code, "加购失败: %s", env.Message)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "首次请求应签发会话Cookie")

	env, _ = do(t, r, http.MethodPost, "/api/v1/checkout", nil, cookies)
	require.Equal(t, 0, env.Code, "结账失败: %s", env.Message)

	var data struct {
		LineCount int    `json:"line_count"`
		Total     string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.LineCount)
	assert.Equal(t, "998.00", data.Total)

	// 小票能取回
	req := httptest.NewRequest(http.MethodGet, "/api/v1/receipt", nil)
	receiptRec := httptest.NewRecorder()
	r.ServeHTTP(receiptRec, req)
	assert.Equal(t, http.StatusOK, receiptRec.Code)
	assert.Contains(t, receiptRec.Body.String(), "Bookstore Receipt")

	// 库存已扣减
	env, _ = do(t, r, http.MethodGet, "/api/v1/books/Dune", nil, nil)
	require.Equal(t, 0, env.Code)
	var bookData struct {
		Stock int `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bookData))
	assert.Equal(t, 3, bookData.Stock)
}

// TestCheckoutHandler_EmptyCart 空购物车返回软错误码
func TestCheckoutHandler_EmptyCart(t *testing.T) {
	r := newTestRouter(t)

	env, _ := do(t, r, http.MethodPost, "/api/v1/checkout", nil, nil)
	assert.Equal(t, 40003, env.Code)
}

// TestCheckoutHandler_ReceiptBeforeAnySale 没有小票时返回资源不存在
func TestCheckoutHandler_ReceiptBeforeAnySale(t *testing.T) {
	r := newTestRouter(t)

	env, _ := do(t, r, http.MethodGet, "/api/v1/receipt", nil, nil)
	assert.Equal(t, 40400, env.Code)
}
