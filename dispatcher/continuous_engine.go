// Package dispatcher implements the symbol-sharded concurrency fabric:
// a fixed set of worker lanes, a write-once symbol->lane hash
// assignment, and asynchronous fan-out to trade and order-result
// observers. It is the only piece of the core that touches goroutines
// directly — the order book and matching engine beneath it are plain,
// single-threaded data structures.
package dispatcher

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/duskline/matchcore/domain"
	"github.com/duskline/matchcore/matching"
	"github.com/duskline/matchcore/orderbook"
)

// TradeObserver is invoked once per executed trade, in execution
// order, on the lane thread that produced it.
type TradeObserver func(*domain.Trade)

// OrderObserver is invoked once per SUBMIT/CANCEL task, on the lane
// thread that produced it, before any TradeObservers for that task.
type OrderObserver func(*OrderResult)

// ContinuousEngine is the symbol-sharded dispatcher: it owns a
// MatchingEngine and routes every SUBMIT/CANCEL request onto one of
// NumLanes worker lanes, chosen by a deterministic hash of the symbol
// and bound for the process's lifetime. Grounded on
// original_source/engine/ContinuousMatchingEngine.{hpp,cpp}.
type ContinuousEngine struct {
	opts    Options
	engine  *matching.MatchingEngine
	lanes   []*lane
	running atomic.Bool
	wg      sync.WaitGroup

	symbolMu sync.Mutex
	symbolTo map[string]int

	obsMu          sync.Mutex
	tradeObservers []TradeObserver
	orderObservers []OrderObserver
}

// New creates a dispatcher over a fresh MatchingEngine. The engine is
// not started; call Start.
func New(opts Options) *ContinuousEngine {
	opts = opts.withDefaults()
	lanes := make([]*lane, opts.NumLanes)
	for i := range lanes {
		lanes[i] = newLane()
	}
	return &ContinuousEngine{
		opts:     opts,
		engine:   matching.NewMatchingEngine(),
		lanes:    lanes,
		symbolTo: make(map[string]int),
	}
}

// Start spins up one worker goroutine per lane. Idempotent.
func (e *ContinuousEngine) Start() {
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	for _, l := range e.lanes {
		l := l
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			l.run(func() bool { return !e.running.Load() })
		}()
	}
	e.opts.Logger.Info("dispatcher started", zap.Int("lanes", len(e.lanes)))
}

// Stop signals every lane to drain and exit, then joins all workers.
// Idempotent: a second call is a no-op. Tasks already enqueued are
// drained; tasks submitted after Stop returns are rejected.
func (e *ContinuousEngine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	for _, l := range e.lanes {
		l.wake()
	}
	e.wg.Wait()
	e.opts.Logger.Info("dispatcher stopped")
}

// laneFor assigns symbol to a lane on first use; the binding is
// permanent thereafter.
func (e *ContinuousEngine) laneFor(symbol string) *lane {
	e.symbolMu.Lock()
	defer e.symbolMu.Unlock()

	idx, ok := e.symbolTo[symbol]
	if !ok {
		idx = laneFor(symbol, len(e.lanes))
		e.symbolTo[symbol] = idx
	}
	return e.lanes[idx]
}

// LaneForSymbol returns the lane index symbol is (or would be) bound
// to, for diagnostics and tests.
func (e *ContinuousEngine) LaneForSymbol(symbol string) int {
	return laneFor(symbol, len(e.lanes))
}

// SubmitOrder enqueues a SUBMIT task on order.Symbol's lane.
// Non-blocking: the caller never waits on matching. Rejects
// (logged, non-fatal) if the dispatcher isn't running or order is nil.
func (e *ContinuousEngine) SubmitOrder(order *domain.Order) error {
	if !e.running.Load() {
		e.opts.Logger.Warn("submit rejected: dispatcher not running")
		return ErrNotRunning
	}
	if order == nil {
		e.opts.Logger.Warn("submit rejected: nil order")
		return ErrAbsentOrder
	}

	e.opts.Metrics.OrderSubmitted()
	l := e.laneFor(order.Symbol)
	l.enqueue(func() {
		e.runSubmit(order)
		e.opts.Metrics.LaneQueueDepth(e.LaneForSymbol(order.Symbol), l.depth())
	})
	return nil
}

// CancelOrder enqueues a CANCEL task on symbol's lane.
func (e *ContinuousEngine) CancelOrder(orderID, symbol string) error {
	if !e.running.Load() {
		e.opts.Logger.Warn("cancel rejected: dispatcher not running")
		return ErrNotRunning
	}

	e.opts.Metrics.OrderCancelled()
	l := e.laneFor(symbol)
	l.enqueue(func() {
		e.runCancel(orderID, symbol)
	})
	return nil
}

func (e *ContinuousEngine) runSubmit(order *domain.Order) {
	trades := e.engine.ProcessOrder(order)
	status := classifySubmit(order, trades)

	e.notifyOrder(&OrderResult{
		Status:  status,
		OrderID: order.ID,
		Symbol:  order.Symbol,
		Trades:  trades,
	})

	if len(trades) > 0 {
		e.opts.Metrics.TradesExecuted(len(trades))
	}
	for _, t := range trades {
		e.notifyTrade(t)
	}
}

func (e *ContinuousEngine) runCancel(orderID, symbol string) {
	ok := e.engine.CancelOrder(orderID, symbol)

	result := &OrderResult{OrderID: orderID, Symbol: symbol, Status: Success}
	if !ok {
		result.Status = Error
		result.Err = "failed to cancel order"
	}
	e.notifyOrder(result)
}

// AddSymbol, RemoveSymbol, HasSymbol, ListSymbols, and GetBook are
// synchronous pass-throughs to the underlying MatchingEngine — not
// serialized on any lane, so callers must not use them for mid-stream
// coordination with in-flight lane work.
func (e *ContinuousEngine) AddSymbol(symbol string) bool    { return e.engine.AddSymbol(symbol) }
func (e *ContinuousEngine) RemoveSymbol(symbol string) bool { return e.engine.RemoveSymbol(symbol) }
func (e *ContinuousEngine) HasSymbol(symbol string) bool    { return e.engine.HasSymbol(symbol) }
func (e *ContinuousEngine) ListSymbols() []string           { return e.engine.ListSymbols() }
func (e *ContinuousEngine) GetBook(symbol string) *orderbook.OrderBook {
	return e.engine.GetBook(symbol)
}

// RegisterTradeObserver appends fn to the trade observer list.
func (e *ContinuousEngine) RegisterTradeObserver(fn TradeObserver) {
	e.obsMu.Lock()
	defer e.obsMu.Unlock()
	e.tradeObservers = append(e.tradeObservers, fn)
}

// RegisterOrderObserver appends fn to the order-result observer list.
func (e *ContinuousEngine) RegisterOrderObserver(fn OrderObserver) {
	e.obsMu.Lock()
	defer e.obsMu.Unlock()
	e.orderObservers = append(e.orderObservers, fn)
}

func (e *ContinuousEngine) notifyTrade(t *domain.Trade) {
	e.obsMu.Lock()
	observers := e.tradeObservers
	e.obsMu.Unlock()

	for _, fn := range observers {
		e.guard(func() { fn(t) })
	}
}

func (e *ContinuousEngine) notifyOrder(r *OrderResult) {
	e.obsMu.Lock()
	observers := e.orderObservers
	e.obsMu.Unlock()

	for _, fn := range observers {
		e.guard(func() { fn(r) })
	}
}

// guard runs fn, recovering a panic so one failing observer can't
// poison the lane it runs on.
func (e *ContinuousEngine) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.opts.Metrics.ObserverPanicRecovered()
			e.opts.Logger.Error("observer panicked", zap.Any("panic", r))
		}
	}()
	fn()
}
