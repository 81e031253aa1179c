package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：集成测试辅助工具
// 这些测试对着一个已经在跑的服务发真实HTTP请求,
// 服务未启动时整组测试跳过(不算失败)。
// 启动方式:go run ./cmd/api

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookData 图书响应数据
type BookData struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Stock     int    `json:"stock"`
	Price     string `json:"price"`
}

// CartData 购物车响应数据
type CartData struct {
	Lines []CartLine `json:"lines"`
}

// CartLine 购物车行
type CartLine struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

// CheckoutData 结账响应数据
type CheckoutData struct {
	LineCount   int    `json:"line_count"`
	Total       string `json:"total"`
	Date        string `json:"date"`
	ReceiptPath string `json:"receipt_path"`
}

// SalesData 销售历史响应数据
type SalesData struct {
	List  []SaleRecord `json:"list"`
	Total int          `json:"total"`
}

// SaleRecord 销售记录
type SaleRecord struct {
	Date         string `json:"date"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	PricePerUnit string `json:"price_per_unit"`
	Total        string `json:"total"`
}

// NewSessionClient 创建带Cookie罐的HTTP客户端
// 购物车按会话(pos_session Cookie)隔离,同一个客户端的请求共享购物车,
// 两个客户端互相看不到对方的购物车
func NewSessionClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err, "创建Cookie罐失败")
	return &http.Client{Timeout: Timeout, Jar: jar}
}

// RequireServer 服务未启动时跳过整组测试
func RequireServer(t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://localhost:8080/ping")
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, client *http.Client, url string, data interface{}) *Response {
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	return doRequest(t, client, req)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, client *http.Client, url string) *Response {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	return doRequest(t, client, req)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, client *http.Client, url string) *Response {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	return doRequest(t, client, req)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, client *http.Client, url string, data interface{}) *Response {
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	return doRequest(t, client, req)
}

func doRequest(t *testing.T, client *http.Client, req *http.Request) *Response {
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GenerateTestTitle 生成唯一的测试书名
// 书名是唯一键,用时间戳避免测试重复运行时冲突
func GenerateTestTitle(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// AddTestBook 入库一本测试图书并返回书名
func AddTestBook(t *testing.T, client *http.Client, prefix string, stock int, price float64) string {
	title := GenerateTestTitle(prefix)
	bookReq := map[string]interface{}{
		"title":     title,
		"author":    "测试作者",
		"publisher": "测试出版社",
		"stock":     stock,
		"price":     price,
	}

	resp := PostJSON(t, client, BaseURL+"/books", bookReq)
	require.Equal(t, 0, resp.Code, "图书入库失败: %s", resp.Message)

	return title
}
