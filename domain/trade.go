package domain

import "time"

// Trade is an immutable record of an executed match. Created only by
// the matching engine at match time.
type Trade struct {
	ID          string
	Symbol      string
	BuyOrderID  string
	SellOrderID string
	Price       int64
	Quantity    int64
	Timestamp   time.Time
}

// NewTrade builds a trade. buyOrderID and sellOrderID carry the order
// IDs only — the trade never holds a live reference to a mutating order.
func NewTrade(id, symbol string, buyOrderID, sellOrderID string, price, quantity int64) *Trade {
	return &Trade{
		ID:          id,
		Symbol:      symbol,
		BuyOrderID:  buyOrderID,
		SellOrderID: sellOrderID,
		Price:       price,
		Quantity:    quantity,
		Timestamp:   time.Now(),
	}
}
