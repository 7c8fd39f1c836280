// Package metrics wraps an engine.EventSink with Prometheus
// instrumentation, counting acks, rejects, cancels, trades, and dones
// as they pass through.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goovo/clob/engine"
)

// Sink decorates an inner engine.EventSink: every call increments the
// relevant Prometheus metric, then forwards to inner unchanged. Book
// drives it synchronously on the same goroutine as AddLimit/Cancel, so
// none of this introduces concurrency into the engine's contract.
type Sink struct {
	inner engine.EventSink

	acks          prometheus.Counter
	rejects       *prometheus.CounterVec
	ackCancels    prometheus.Counter
	rejectCancels *prometheus.CounterVec
	trades        prometheus.Counter
	tradedQty     prometheus.Counter
	notional      prometheus.Counter
	dones         prometheus.Counter
}

// NewSink registers the CLOB metric family on reg and returns a Sink
// that wraps inner. Pass prometheus.NewRegistry() (or
// prometheus.DefaultRegisterer) for reg.
func NewSink(reg prometheus.Registerer, inner engine.EventSink) *Sink {
	if inner == nil {
		inner = engine.NoOpSink{}
	}

	s := &Sink{
		inner: inner,
		acks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clob_orders_acked_total",
			Help: "Total number of AddLimit calls that resulted in an order resting on the book.",
		}),
		rejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clob_orders_rejected_total",
			Help: "Total number of AddLimit calls rejected, by reason.",
		}, []string{"reason"}),
		ackCancels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clob_cancels_acked_total",
			Help: "Total number of successful Cancel calls.",
		}),
		rejectCancels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clob_cancels_rejected_total",
			Help: "Total number of Cancel calls rejected, by reason.",
		}, []string{"reason"}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clob_trades_total",
			Help: "Total number of trade events emitted.",
		}),
		tradedQty: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clob_traded_qty_total",
			Help: "Sum of qty across every trade event.",
		}),
		notional: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clob_notional_traded_total",
			Help: "Sum of price_ticks * qty across every trade event.",
		}),
		dones: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clob_orders_done_total",
			Help: "Total number of orders that reached zero remaining quantity.",
		}),
	}

	reg.MustRegister(s.acks, s.rejects, s.ackCancels, s.rejectCancels,
		s.trades, s.tradedQty, s.notional, s.dones)

	return s
}

func (s *Sink) OnAckAdd(e engine.AckAddEvent) {
	s.acks.Inc()
	s.inner.OnAckAdd(e)
}

func (s *Sink) OnRejectAdd(e engine.RejectAddEvent) {
	s.rejects.WithLabelValues(e.Reason).Inc()
	s.inner.OnRejectAdd(e)
}

func (s *Sink) OnAckCancel(e engine.AckCancelEvent) {
	s.ackCancels.Inc()
	s.inner.OnAckCancel(e)
}

func (s *Sink) OnRejectCancel(e engine.RejectCancelEvent) {
	s.rejectCancels.WithLabelValues(e.Reason).Inc()
	s.inner.OnRejectCancel(e)
}

func (s *Sink) OnTrade(e engine.TradeEvent) {
	s.trades.Inc()
	s.tradedQty.Add(float64(e.Qty))
	s.notional.Add(float64(e.Price) * float64(e.Qty))

	s.inner.OnTrade(e)
}

func (s *Sink) OnDone(e engine.DoneEvent) {
	s.dones.Inc()
	s.inner.OnDone(e)
}
