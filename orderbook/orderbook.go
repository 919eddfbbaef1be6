// Package orderbook implements the per-symbol order book: two
// price-time ordered indices (bids, asks) plus a by-id index, with no
// concurrency of its own — callers (the matching engine, and above it
// the dispatcher's lanes) are responsible for serializing access to a
// given book.
package orderbook

import (
	"errors"

	"github.com/duskline/matchcore/domain"
)

// ErrAbsentOrder is returned by Add when order is nil.
var ErrAbsentOrder = errors.New("orderbook: order is nil")

// ErrSymbolMismatch is returned by Add when order.Symbol != book.Symbol().
var ErrSymbolMismatch = errors.New("orderbook: order symbol does not match book")

// ErrDuplicateID is returned by Add when order.ID is already resting.
var ErrDuplicateID = errors.New("orderbook: duplicate order id")

// OrderBook holds the resting orders for exactly one symbol.
type OrderBook struct {
	symbol string
	bids   *bookSide
	asks   *bookSide
	byID   map[string]*domain.Order
}

// NewOrderBook creates an empty book for symbol.
func NewOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		symbol: symbol,
		bids:   newBookSide(true),
		asks:   newBookSide(false),
		byID:   make(map[string]*domain.Order),
	}
}

// Symbol returns the immutable symbol this book serves.
func (ob *OrderBook) Symbol() string {
	return ob.symbol
}

// Add inserts order into the side-appropriate index and the by-id
// index. Rejects an absent order, a symbol mismatch, or a duplicate id.
func (ob *OrderBook) Add(order *domain.Order) error {
	if order == nil {
		return ErrAbsentOrder
	}
	if order.Symbol != ob.symbol {
		return ErrSymbolMismatch
	}
	if _, exists := ob.byID[order.ID]; exists {
		return ErrDuplicateID
	}

	ob.byID[order.ID] = order
	ob.sideFor(order.Side).insert(order)
	return nil
}

// Cancel removes order.ID from the book. Returns false if it isn't
// resting (unknown, already filled, or already cancelled).
func (ob *OrderBook) Cancel(orderID string) bool {
	order, exists := ob.byID[orderID]
	if !exists {
		return false
	}

	ob.sideFor(order.Side).removeAt(order)
	delete(ob.byID, orderID)
	return true
}

// GetByID returns the resting order with orderID, or nil.
func (ob *OrderBook) GetByID(orderID string) *domain.Order {
	return ob.byID[orderID]
}

// BestBidPrice returns the best bid, or 0 if there are none.
func (ob *OrderBook) BestBidPrice() int64 {
	return ob.bids.bestPrice()
}

// BestAskPrice returns the best ask, or 0 if there are none.
func (ob *OrderBook) BestAskPrice() int64 {
	return ob.asks.bestPrice()
}

// BidSize sums quantity across resting bids at exactly price.
func (ob *OrderBook) BidSize(price int64) int64 {
	return ob.bids.sizeAt(price)
}

// AskSize sums quantity across resting asks at exactly price.
func (ob *OrderBook) AskSize(price int64) int64 {
	return ob.asks.sizeAt(price)
}

// AllBids returns resting bids in priority order (best first).
func (ob *OrderBook) AllBids() []*domain.Order {
	return ob.bids.all()
}

// AllAsks returns resting asks in priority order (best first).
func (ob *OrderBook) AllAsks() []*domain.Order {
	return ob.asks.all()
}

// FrontBid returns the earliest-arrived order at the best bid level,
// or nil, without allocating a snapshot of the whole side.
func (ob *OrderBook) FrontBid() *domain.Order {
	if level := ob.bids.best(); level != nil {
		return level.front()
	}
	return nil
}

// FrontAsk returns the earliest-arrived order at the best ask level,
// or nil, without allocating a snapshot of the whole side.
func (ob *OrderBook) FrontAsk() *domain.Order {
	if level := ob.asks.best(); level != nil {
		return level.front()
	}
	return nil
}

func (ob *OrderBook) sideFor(side domain.Side) *bookSide {
	if side == domain.SideBuy {
		return ob.bids
	}
	return ob.asks
}
