// Package metrics implements dispatcher.Recorder on top of
// github.com/prometheus/client_golang, grounded on the
// prometheus/client_golang usage throughout abdoElHodaky-tradSys's
// internal packages. It is optional: a ContinuousEngine with no
// configured Recorder falls back to a no-op. These are plain
// operational counters, not a market-data dissemination feature.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects dispatcher operational counters into a dedicated
// prometheus.Registry (not the global default, so embedding this
// engine in a larger service never collides with its registry).
type Recorder struct {
	ordersSubmitted prometheus.Counter
	ordersCancelled prometheus.Counter
	tradesExecuted  prometheus.Counter
	observerPanics  prometheus.Counter
	laneQueueDepth  *prometheus.GaugeVec
}

// NewRecorder registers matchcore's collectors on reg and returns a
// Recorder ready to pass as dispatcher.Options.Metrics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		ordersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcore",
			Name:      "orders_submitted_total",
			Help:      "Orders accepted by the dispatcher for processing.",
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcore",
			Name:      "orders_cancelled_total",
			Help:      "Cancel requests accepted by the dispatcher for processing.",
		}),
		tradesExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcore",
			Name:      "trades_executed_total",
			Help:      "Trades produced by the matching engine.",
		}),
		observerPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcore",
			Name:      "observer_panics_recovered_total",
			Help:      "Observer panics caught so a lane keeps running.",
		}),
		laneQueueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "matchcore",
			Name:      "lane_queue_depth",
			Help:      "Pending tasks on a dispatcher lane, sampled after each submit task runs.",
		}, []string{"lane"}),
	}

	reg.MustRegister(r.ordersSubmitted, r.ordersCancelled, r.tradesExecuted, r.observerPanics, r.laneQueueDepth)
	return r
}

func (r *Recorder) OrderSubmitted()    { r.ordersSubmitted.Inc() }
func (r *Recorder) OrderCancelled()    { r.ordersCancelled.Inc() }
func (r *Recorder) TradesExecuted(n int) {
	r.tradesExecuted.Add(float64(n))
}
func (r *Recorder) ObserverPanicRecovered() { r.observerPanics.Inc() }
func (r *Recorder) LaneQueueDepth(lane, depth int) {
	r.laneQueueDepth.WithLabelValues(strconv.Itoa(lane)).Set(float64(depth))
}
