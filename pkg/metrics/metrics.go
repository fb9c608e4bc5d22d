// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// - **Counter（计数器）**：只增不减的累计值（HTTP请求总数、引文创建总数）
// - **Gauge（仪表盘）**：可增可减的瞬时值（正在处理的请求数）
// - **Histogram（直方图）**：观测值的分布（请求耗时，自动计算P50/P90/P99）
//
// 使用示例：
//
//	// 1. 初始化Metrics
//	metrics.InitMetrics()
//
//	// 2. 在HTTP服务中暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 在业务代码中记录指标
//	metrics.IncCounter(metrics.QuotesCreatedTotal)
//	metrics.ObserveHistogram(metrics.QuoteWriteDuration, time.Since(start).Seconds())
//
// 命名规范：
// - Counter以`_total`结尾（quotes_created_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 避免高基数标签（不要用quote_id做标签，用method/path/status）
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/quotes）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// QuotesCreatedTotal 引文创建总数（Counter）
	QuotesCreatedTotal prometheus.Counter

	// QuotesDeletedTotal 引文删除总数（Counter）
	QuotesDeletedTotal prometheus.Counter

	// QuoteWritesFailedTotal 引文写入失败总数（Counter）
	QuoteWritesFailedTotal prometheus.Counter

	// QuoteWriteDuration 引文写事务耗时（Histogram）
	// 覆盖：create/update/delete的整个事务（含关联表的删改）
	QuoteWriteDuration prometheus.Histogram

	// QuoteAggregationDuration 聚合读耗时（Histogram）
	// 覆盖：全表关联装载 + 内存装配
	QuoteAggregationDuration prometheus.Histogram
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. Histogram的Buckets根据业务场景定制
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 引文业务指标
	QuotesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "引文创建总数",
		},
	)

	QuotesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_deleted_total",
			Help: "引文删除总数",
		},
	)

	QuoteWritesFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_writes_failed_total",
			Help: "引文写入失败总数",
		},
	)

	QuoteWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_write_duration_seconds",
			Help:    "引文写事务耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	QuoteAggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_aggregation_duration_seconds",
			Help:    "引文聚合读耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
}

// =========================================
// 辅助函数（简化调用方代码）
// =========================================

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counterVec *prometheus.CounterVec, labels map[string]string) {
	if counterVec != nil {
		counterVec.With(labels).Inc()
	}
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram != nil {
		histogram.Observe(value)
	}
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogramVec *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogramVec != nil {
		histogramVec.With(labels).Observe(value)
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}
