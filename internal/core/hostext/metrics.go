package hostext

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ============================================================================
//                          Prometheus 监控指标
// ============================================================================

var (
	// callsTotal 扩展调用次数（按操作和状态分类）
	callsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assetbridge",
			Subsystem: "extension",
			Name:      "calls_total",
			Help:      "Total number of chain extension calls by operation and status",
		},
		[]string{"operation", "status"},
	)

	// callDuration 账本处理耗时（直方图）
	callDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "assetbridge",
			Subsystem: "extension",
			Name:      "call_duration_seconds",
			Help:      "Duration of chain extension calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs ~ 2.6s
		},
		[]string{"operation"},
	)

	// violationsTotal 协议违例次数（按类型分类）
	violationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assetbridge",
			Subsystem: "extension",
			Name:      "violations_total",
			Help:      "Total number of protocol violations detected by the host",
		},
		[]string{"kind"},
	)
)

// ============================================================================
//                          指标注册
// ============================================================================

func init() {
	prometheus.MustRegister(
		callsTotal,
		callDuration,
		violationsTotal,
	)
}

// CallStat 单个(操作, 状态)组合的调用计数
type CallStat struct {
	Operation string
	Status    string
	Count     float64
}

// CallStats 从默认注册表读取当前进程的调用计数
func CallStats() ([]CallStat, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, err
	}

	var stats []CallStat
	for _, mf := range families {
		if mf.GetName() != "assetbridge_extension_calls_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			stat := CallStat{Count: m.GetCounter().GetValue()}
			for _, label := range m.GetLabel() {
				switch label.GetName() {
				case "operation":
					stat.Operation = label.GetValue()
				case "status":
					stat.Status = label.GetValue()
				}
			}
			stats = append(stats, stat)
		}
	}
	return stats, nil
}
