package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks sticker sales, auth activity and query cache efficiency.
// All methods are safe on a nil receiver so callers can run without metrics.
type Metrics struct {
	PurchasesCreated    *prometheus.CounterVec
	PurchaseRevenue     prometheus.Counter
	ResidentsRegistered prometheus.Counter
	AuthEvents          *prometheus.CounterVec
	CacheRequests       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}

// New registers all metrics with the default prometheus registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PurchasesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hoa_purchases_created_total",
			Help: "Total number of sticker purchases recorded",
		}, []string{"type", "penalty"}),
		PurchaseRevenue: factory.NewCounter(prometheus.CounterOpts{
			Name: "hoa_purchase_revenue_total",
			Help: "Sum of amounts charged for sticker purchases",
		}),
		ResidentsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "hoa_residents_registered_total",
			Help: "Total number of residents registered",
		}),
		AuthEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hoa_auth_events_total",
			Help: "Session changes by event name",
		}, []string{"event"}),
		CacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hoa_query_cache_requests_total",
			Help: "Query cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hoa_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) IncrementPurchase(purchaseType string, penalty bool, amount float64) {
	if m == nil {
		return
	}
	m.PurchasesCreated.WithLabelValues(purchaseType, strconv.FormatBool(penalty)).Inc()
	m.PurchaseRevenue.Add(amount)
}

func (m *Metrics) IncrementResidentRegistered() {
	if m == nil {
		return
	}
	m.ResidentsRegistered.Inc()
}

func (m *Metrics) IncrementAuthEvent(event string) {
	if m == nil {
		return
	}
	m.AuthEvents.WithLabelValues(event).Inc()
}

// ObserveCache records a lookup result: "hit", "miss" or "error".
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(result).Inc()
}

// ObserveRequest records the duration of a request. Call with time.Now() at the start.
func (m *Metrics) ObserveRequest(route, method string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}
