// Package metrics 提供基于Prometheus的指标收集
//
// 设计说明：
// 1. Counter（计数器）：只增不减，如HTTP请求总数、结账总数
// 2. Histogram（直方图）：观测值分布，如请求耗时的P50/P90/P99
// 3. 指标通过/metrics端点暴露，由Prometheus Server定期抓取
//
// 指标命名遵循Prometheus规范：<名词>_<单位>_<total|...>
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// once 防止重复注册（Prometheus不允许同名指标注册两次）
	once sync.Once

	// httpRequestsTotal HTTP请求总数（按方法、路径、状态码区分）
	httpRequestsTotal *prometheus.CounterVec

	// httpRequestDuration HTTP请求耗时分布（秒）
	httpRequestDuration *prometheus.HistogramVec

	// checkoutTotal 结账总数（按结果区分：success/failed/empty）
	checkoutTotal *prometheus.CounterVec

	// saleAmountTotal 累计销售金额
	saleAmountTotal prometheus.Counter
)

// Init 初始化并注册所有指标
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookpos_http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		httpRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookpos_http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		)

		checkoutTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookpos_checkout_total",
				Help: "结账总数（按结果区分）",
			},
			[]string{"result"},
		)

		saleAmountTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookpos_sale_amount_total",
				Help: "累计销售金额",
			},
		)
	})
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordCheckout 记录一次结账结果
// result取值：success | failed | empty
func RecordCheckout(result string) {
	if checkoutTotal == nil {
		return
	}
	checkoutTotal.WithLabelValues(result).Inc()
}

// AddSaleAmount 累加销售金额
func AddSaleAmount(amount float64) {
	if saleAmountTotal == nil {
		return
	}
	saleAmountTotal.Add(amount)
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
