package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestInit_Idempotent 重复Init不应panic(Prometheus禁止同名指标注册两次)
func TestInit_Idempotent(t *testing.T) {
	Init()
	Init()

	if checkoutTotal == nil {
		t.Fatal("Init后指标应该已注册")
	}
}

// TestRecordBeforeInit 未Init时记录指标应该安全无操作
func TestRecordBeforeInit(t *testing.T) {
	// 其他测试可能已经Init过,这里只验证nil守卫不panic
	ObserveHTTPRequest("GET", "/ping", "200", 0.01)
	RecordCheckout("success")
	AddSaleAmount(99.5)
}

// TestHandler_ExposesMetrics /metrics端点应该暴露已注册的指标
func TestHandler_ExposesMetrics(t *testing.T) {
	Init()
	RecordCheckout("success")
	AddSaleAmount(998.0)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("期望200,实际%d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "bookpos_checkout_total") {
		t.Error("输出应该包含结账计数指标")
	}
	if !strings.Contains(body, "bookpos_sale_amount_total") {
		t.Error("输出应该包含销售金额指标")
	}
}
