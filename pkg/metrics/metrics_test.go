package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	// 验证所有指标已创建
	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if QuotesCreatedTotal == nil {
		t.Error("QuotesCreatedTotal未初始化")
	}
	if QuotesDeletedTotal == nil {
		t.Error("QuotesDeletedTotal未初始化")
	}
	if QuoteWritesFailedTotal == nil {
		t.Error("QuoteWritesFailedTotal未初始化")
	}
	if QuoteWriteDuration == nil {
		t.Error("QuoteWriteDuration未初始化")
	}
	if QuoteAggregationDuration == nil {
		t.Error("QuoteAggregationDuration未初始化")
	}

	// 重复初始化不应panic（promauto重复注册同名指标会panic，由initialized标记拦截）
	InitMetrics()
}

// TestCounter 测试Counter指标（用差值断言，避免依赖测试执行顺序）
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, QuotesCreatedTotal)

	IncCounter(QuotesCreatedTotal)
	IncCounter(QuotesCreatedTotal)
	IncCounter(QuotesCreatedTotal)

	after := getCounterValue(t, QuotesCreatedTotal)
	if after-before != 3 {
		t.Errorf("Counter增量错误: expected=3, got=%f", after-before)
	}
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{
		"method": "GET",
		"path":   "/api/v1/quotes",
		"status": "200",
	}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, map[string]string{
		"method": "POST",
		"path":   "/api/v1/quotes",
		"status": "200",
	})
	IncCounterVec(HTTPRequestsTotal, labels)

	after := getCounterVecValue(t, HTTPRequestsTotal, labels)
	if after-before != 2 {
		t.Errorf("CounterVec增量错误: expected=2, got=%f", after-before)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	value := getGaugeValue(t, HTTPRequestsInProgress)
	if value-before != 2 {
		t.Errorf("Gauge递增后值错误: expected=+2, got=%f", value-before)
	}

	DecGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	value = getGaugeValue(t, HTTPRequestsInProgress)
	if value != before {
		t.Errorf("Gauge递减后应回到初始值: expected=%f, got=%f", before, value)
	}
}

// TestHistogram 测试Histogram指标
func TestHistogram(t *testing.T) {
	InitMetrics()

	beforeCount := getHistogramCount(t, QuoteWriteDuration)
	beforeSum := getHistogramSum(t, QuoteWriteDuration)

	ObserveHistogram(QuoteWriteDuration, 0.05)
	ObserveHistogram(QuoteWriteDuration, 0.1)
	ObserveHistogram(QuoteWriteDuration, 0.5)

	count := getHistogramCount(t, QuoteWriteDuration)
	if count-beforeCount != 3 {
		t.Errorf("Histogram观测次数错误: expected=3, got=%d", count-beforeCount)
	}

	sum := getHistogramSum(t, QuoteWriteDuration)
	expectedSum := 0.05 + 0.1 + 0.5
	if sum-beforeSum != expectedSum {
		t.Errorf("Histogram总和错误: expected=%f, got=%f", expectedSum, sum-beforeSum)
	}
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/quotes"}
	before := getHistogramVecCount(t, HTTPRequestDuration, labels)

	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.1)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "POST", "path": "/api/v1/quotes"}, 0.2)

	count := getHistogramVecCount(t, HTTPRequestDuration, labels)
	if count-before != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", count-before)
	}
}

// TestNilSafeHelpers 辅助函数在指标未初始化（nil）时不panic
// 场景：单元测试不调用InitMetrics时，业务代码中的埋点应安全跳过
func TestNilSafeHelpers(t *testing.T) {
	IncCounter(nil)
	IncCounterVec(nil, map[string]string{"method": "GET"})
	ObserveHistogram(nil, 1.0)
	ObserveHistogramVec(nil, nil, 1.0)
	IncGauge(nil)
	DecGauge(nil)
}

// 辅助函数：获取Counter值
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	counter := counterVec.With(labels)
	if err := counter.(prometheus.Counter).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

// 辅助函数：获取Histogram观测次数
func getHistogramCount(t *testing.T, histogram prometheus.Histogram) uint64 {
	var metric dto.Metric
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取Histogram值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}

// 辅助函数：获取Histogram总和
func getHistogramSum(t *testing.T, histogram prometheus.Histogram) float64 {
	var metric dto.Metric
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取Histogram值失败: %v", err)
	}
	return metric.Histogram.GetSampleSum()
}

// 辅助函数：获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}
