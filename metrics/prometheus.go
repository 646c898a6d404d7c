package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tradegen Metrics Collector
// Provides comprehensive metrics for monitoring

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all Tradegen metrics
type Collector struct {
	// Deposit metrics
	DepositsTotal *prometheus.CounterVec
	DepositValue  *prometheus.CounterVec

	// Withdrawal metrics
	WithdrawalsTotal *prometheus.CounterVec
	WithdrawalValue  *prometheus.CounterVec

	// Execution metrics
	ExecutionsTotal  *prometheus.CounterVec
	ExecutionLatency *prometheus.HistogramVec

	// Pool metrics
	PoolValue  *prometheus.GaugeVec
	TokenPrice *prometheus.GaugeVec

	// Snapshot metrics
	SnapshotsTotal *prometheus.CounterVec
	SnapshotProfit *prometheus.GaugeVec

	// Marketplace metrics
	SalesTotal *prometheus.CounterVec
	SaleVolume *prometheus.CounterVec

	// System metrics
	ActiveUsers prometheus.Gauge
	BlockHeight prometheus.Gauge
	BlockTime   *prometheus.HistogramVec
	TxPoolSize  prometheus.Gauge
	PeerCount   prometheus.Gauge
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
	})
	return collector
}

// newCollector creates a new metrics collector
func newCollector() *Collector {
	c := &Collector{}

	// Deposit metrics
	c.DepositsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "deposits",
			Name:      "total",
			Help:      "Total number of pool deposits",
		},
		[]string{"pool_id"},
	)

	c.DepositValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "deposits",
			Name:      "value_usd",
			Help:      "Total deposited value in USD",
		},
		[]string{"pool_id"},
	)

	// Withdrawal metrics
	c.WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "withdrawals",
			Name:      "total",
			Help:      "Total number of pool withdrawals",
		},
		[]string{"pool_id"},
	)

	c.WithdrawalValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "withdrawals",
			Name:      "value_usd",
			Help:      "Total withdrawn cost basis in USD",
		},
		[]string{"pool_id"},
	)

	// Execution metrics
	c.ExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "executions",
			Name:      "total",
			Help:      "Total number of manager transactions executed",
		},
		[]string{"pool_id", "action"},
	)

	c.ExecutionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tradegen",
			Subsystem: "executions",
			Name:      "latency_ms",
			Help:      "Transaction verification latency in milliseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"pool_id"},
	)

	// Pool metrics
	c.PoolValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "pools",
			Name:      "value_usd",
			Help:      "Current pool value in USD",
		},
		[]string{"pool_id"},
	)

	c.TokenPrice = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "pools",
			Name:      "token_price_usd",
			Help:      "Current pool token price in USD",
		},
		[]string{"pool_id"},
	)

	// Snapshot metrics
	c.SnapshotsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "snapshots",
			Name:      "total",
			Help:      "Total number of profit snapshots taken",
		},
		[]string{"pool_id"},
	)

	c.SnapshotProfit = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "snapshots",
			Name:      "profit_usd",
			Help:      "Profit recorded by the latest snapshot in USD",
		},
		[]string{"pool_id"},
	)

	// Marketplace metrics
	c.SalesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "marketplace",
			Name:      "sales_total",
			Help:      "Total number of marketplace sales",
		},
		[]string{"pool_id"},
	)

	c.SaleVolume = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradegen",
			Subsystem: "marketplace",
			Name:      "volume_usd",
			Help:      "Total marketplace sale volume in USD",
		},
		[]string{"pool_id"},
	)

	// System metrics
	c.ActiveUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "system",
			Name:      "active_users",
			Help:      "Number of active users",
		},
	)

	c.BlockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "system",
			Name:      "block_height",
			Help:      "Current block height",
		},
	)

	c.BlockTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tradegen",
			Subsystem: "system",
			Name:      "block_time_ms",
			Help:      "Block time in milliseconds",
			Buckets:   []float64{100, 250, 500, 1000, 2000, 5000},
		},
		[]string{},
	)

	c.TxPoolSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "system",
			Name:      "tx_pool_size",
			Help:      "Transaction pool size",
		},
	)

	c.PeerCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tradegen",
			Subsystem: "system",
			Name:      "peer_count",
			Help:      "Number of connected peers",
		},
	)

	// Register all metrics
	c.registerAll()

	return c
}

// registerAll registers all metrics with Prometheus
func (c *Collector) registerAll() {
	// Deposit metrics
	prometheus.MustRegister(c.DepositsTotal)
	prometheus.MustRegister(c.DepositValue)

	// Withdrawal metrics
	prometheus.MustRegister(c.WithdrawalsTotal)
	prometheus.MustRegister(c.WithdrawalValue)

	// Execution metrics
	prometheus.MustRegister(c.ExecutionsTotal)
	prometheus.MustRegister(c.ExecutionLatency)

	// Pool metrics
	prometheus.MustRegister(c.PoolValue)
	prometheus.MustRegister(c.TokenPrice)

	// Snapshot metrics
	prometheus.MustRegister(c.SnapshotsTotal)
	prometheus.MustRegister(c.SnapshotProfit)

	// Marketplace metrics
	prometheus.MustRegister(c.SalesTotal)
	prometheus.MustRegister(c.SaleVolume)

	// System metrics
	prometheus.MustRegister(c.ActiveUsers)
	prometheus.MustRegister(c.BlockHeight)
	prometheus.MustRegister(c.BlockTime)
	prometheus.MustRegister(c.TxPoolSize)
	prometheus.MustRegister(c.PeerCount)
}

// ============ Recording Helpers ============

// RecordDeposit records a pool deposit
func (c *Collector) RecordDeposit(poolID string, value float64) {
	c.DepositsTotal.WithLabelValues(poolID).Inc()
	c.DepositValue.WithLabelValues(poolID).Add(value)
}

// RecordWithdrawal records a pool withdrawal
func (c *Collector) RecordWithdrawal(poolID string, value float64) {
	c.WithdrawalsTotal.WithLabelValues(poolID).Inc()
	c.WithdrawalValue.WithLabelValues(poolID).Add(value)
}

// RecordExecution records a manager transaction
func (c *Collector) RecordExecution(poolID, action string) {
	c.ExecutionsTotal.WithLabelValues(poolID, action).Inc()
}

// RecordExecutionLatency records transaction verification latency
func (c *Collector) RecordExecutionLatency(poolID string, latencyMs float64) {
	c.ExecutionLatency.WithLabelValues(poolID).Observe(latencyMs)
}

// RecordSnapshot records a profit snapshot
func (c *Collector) RecordSnapshot(poolID string, profit float64) {
	c.SnapshotsTotal.WithLabelValues(poolID).Inc()
	c.SnapshotProfit.WithLabelValues(poolID).Set(profit)
}

// RecordMarketplaceSale records a marketplace sale
func (c *Collector) RecordMarketplaceSale(poolID string, volume float64) {
	c.SalesTotal.WithLabelValues(poolID).Inc()
	c.SaleVolume.WithLabelValues(poolID).Add(volume)
}

// UpdatePoolValue updates the pool value and token price gauges
func (c *Collector) UpdatePoolValue(poolID string, value, price float64) {
	c.PoolValue.WithLabelValues(poolID).Set(value)
	c.TokenPrice.WithLabelValues(poolID).Set(price)
}

// UpdateSystemMetrics updates system-level metrics
func (c *Collector) UpdateSystemMetrics(blockHeight int64, txPoolSize int, peerCount int) {
	c.BlockHeight.Set(float64(blockHeight))
	c.TxPoolSize.Set(float64(txPoolSize))
	c.PeerCount.Set(float64(peerCount))
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for measuring latency
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000.0
}
