// Package matching owns the symbol -> order book mapping and the
// price-time priority crossing algorithm. A MatchingEngine is
// single-threaded with respect to any one symbol: callers (the
// dispatcher's lanes) must guarantee that.
package matching

import (
	"sync"
	"sync/atomic"

	"github.com/duskline/matchcore/domain"
	"github.com/duskline/matchcore/orderbook"
)

// MatchingEngine maps symbols to their order books and runs the
// crossing algorithm. Reads of the symbol->book map are lock-free;
// writes (AddSymbol, and the auto-create path in ProcessOrder) copy
// the map under mu. Same atomic.Value copy-on-write shape as
// ExchangeEngine's symbol->*MatchingEngine map.
type MatchingEngine struct {
	books atomic.Value // map[string]*orderbook.OrderBook
	mu    sync.Mutex
	trade *idGenerator
}

// NewMatchingEngine creates an empty engine.
func NewMatchingEngine() *MatchingEngine {
	e := &MatchingEngine{trade: newIDGenerator("T")}
	e.books.Store(make(map[string]*orderbook.OrderBook))
	return e
}

func (e *MatchingEngine) snapshot() map[string]*orderbook.OrderBook {
	return e.books.Load().(map[string]*orderbook.OrderBook)
}

// AddSymbol creates a book for symbol if one doesn't already exist.
// Returns true if newly created.
func (e *MatchingEngine) AddSymbol(symbol string) bool {
	if _, ok := e.snapshot()[symbol]; ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	books := e.snapshot()
	if _, ok := books[symbol]; ok {
		return false
	}

	next := make(map[string]*orderbook.OrderBook, len(books)+1)
	for k, v := range books {
		next[k] = v
	}
	next[symbol] = orderbook.NewOrderBook(symbol)
	e.books.Store(next)
	return true
}

// RemoveSymbol drops symbol's book. Does not check it is empty — a
// caller removing a symbol with resting orders silently loses them;
// callers must ensure the book is idle first.
func (e *MatchingEngine) RemoveSymbol(symbol string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	books := e.snapshot()
	if _, ok := books[symbol]; !ok {
		return false
	}

	next := make(map[string]*orderbook.OrderBook, len(books))
	for k, v := range books {
		if k != symbol {
			next[k] = v
		}
	}
	e.books.Store(next)
	return true
}

// HasSymbol reports whether symbol has a book.
func (e *MatchingEngine) HasSymbol(symbol string) bool {
	_, ok := e.snapshot()[symbol]
	return ok
}

// ListSymbols returns every known symbol, in no particular order.
func (e *MatchingEngine) ListSymbols() []string {
	books := e.snapshot()
	out := make([]string, 0, len(books))
	for s := range books {
		out = append(out, s)
	}
	return out
}

// GetBook returns the book for symbol, or nil if unknown.
func (e *MatchingEngine) GetBook(symbol string) *orderbook.OrderBook {
	return e.snapshot()[symbol]
}

func (e *MatchingEngine) getOrCreateBook(symbol string) *orderbook.OrderBook {
	if book := e.GetBook(symbol); book != nil {
		return book
	}
	e.AddSymbol(symbol)
	return e.GetBook(symbol)
}

// ProcessOrder runs the crossing algorithm for order against the book
// for order.Symbol, auto-creating that book if absent. Returns the
// trades executed, in execution order.
func (e *MatchingEngine) ProcessOrder(order *domain.Order) []*domain.Trade {
	if order == nil {
		return nil
	}

	book := e.getOrCreateBook(order.Symbol)

	if order.IsMarket() {
		opposite := book.BestBidPrice()
		if order.Side == domain.SideBuy {
			opposite = book.BestAskPrice()
		}
		if opposite == 0 {
			return nil
		}
	}

	trades := e.cross(book, order)

	if order.Quantity > 0 && !order.IsMarket() {
		// Add cannot fail here: the order was never in this book
		// (it just arrived) and its symbol matches by construction.
		_ = book.Add(order)
	}

	return trades
}

// cross walks the opposite side of book in priority order, executing
// trades against order until order is filled or no further resting
// order crosses.
func (e *MatchingEngine) cross(book *orderbook.OrderBook, order *domain.Order) []*domain.Trade {
	var trades []*domain.Trade

	crosses := func(restingPrice int64) bool {
		if order.IsMarket() {
			return true
		}
		if order.Side == domain.SideBuy {
			return order.Price >= restingPrice
		}
		return order.Price <= restingPrice
	}

	for order.Quantity > 0 {
		var resting *domain.Order
		if order.Side == domain.SideBuy {
			resting = book.FrontAsk()
		} else {
			resting = book.FrontBid()
		}
		if resting == nil || !crosses(resting.Price) {
			break
		}

		qty := order.Quantity
		if resting.Quantity < qty {
			qty = resting.Quantity
		}

		buyID, sellID := order.ID, resting.ID
		if order.Side == domain.SideSell {
			buyID, sellID = resting.ID, order.ID
		}

		trade := domain.NewTrade(e.trade.next(), book.Symbol(), buyID, sellID, resting.Price, qty)
		trades = append(trades, trade)

		order.Quantity -= qty
		resting.Quantity -= qty

		if resting.Quantity == 0 {
			book.Cancel(resting.ID)
		}
	}

	return trades
}

// CancelOrder removes orderID from symbol's book. Returns false if the
// symbol is unknown or the order isn't resting.
func (e *MatchingEngine) CancelOrder(orderID, symbol string) bool {
	book := e.GetBook(symbol)
	if book == nil {
		return false
	}
	return book.Cancel(orderID)
}

// BestBidPrice, BestAskPrice, BidSize, and AskSize delegate to
// symbol's book, returning the sentinel 0 if the symbol is unknown.
func (e *MatchingEngine) BestBidPrice(symbol string) int64 {
	if book := e.GetBook(symbol); book != nil {
		return book.BestBidPrice()
	}
	return 0
}

func (e *MatchingEngine) BestAskPrice(symbol string) int64 {
	if book := e.GetBook(symbol); book != nil {
		return book.BestAskPrice()
	}
	return 0
}

func (e *MatchingEngine) BidSize(symbol string, price int64) int64 {
	if book := e.GetBook(symbol); book != nil {
		return book.BidSize(price)
	}
	return 0
}

func (e *MatchingEngine) AskSize(symbol string, price int64) int64 {
	if book := e.GetBook(symbol); book != nil {
		return book.AskSize(price)
	}
	return 0
}
