package dispatcher

import "github.com/duskline/matchcore/domain"

// Status classifies the outcome of one SUBMIT or CANCEL task,
// delivered to order-result observers exactly once per task.
type Status int

const (
	// Success covers a non-market order that's fully resolved: fully
	// filled, or resting with no trades, or resting with a residual
	// after partial fills. A limit order residual always rests, so
	// it is classified Success rather than PartialFill.
	Success Status = iota
	// PartialFill is reachable only for market orders whose opposite
	// side ran out of liquidity mid-cross: the residual is discarded
	// (market orders never rest), so it is surfaced distinctly from
	// Success.
	PartialFill
	// NoMatch is a market order rejected at the preflight check: the
	// opposite side was empty.
	NoMatch
	// Error covers a cancel that targeted an unknown symbol or an
	// order that wasn't resting.
	Error
)

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case PartialFill:
		return "PARTIAL_FILL"
	case NoMatch:
		return "NO_MATCH"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// OrderResult is delivered to order-result observers once per
// SUBMIT/CANCEL task.
type OrderResult struct {
	Status  Status
	OrderID string
	Symbol  string
	Trades  []*domain.Trade
	Err     string
}

func classifySubmit(order *domain.Order, trades []*domain.Trade) Status {
	if !order.IsMarket() {
		return Success
	}
	if len(trades) == 0 {
		return NoMatch
	}
	if order.Quantity > 0 {
		return PartialFill
	}
	return Success
}
