// Package orderfactory is an external order factory that validates
// inputs and mints monotonic, opaque order IDs. The matching core
// treats order IDs as uninterpreted keys and does not depend on this
// package's ID shape.
//
// Grounded on original_source/order/OrderFactory.{hpp,cpp}: a package
// counter, not a UUID, formatted as a decimal string, with the same
// validation rules (reject a non-positive limit price, reject a
// non-positive quantity).
package orderfactory

import (
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/duskline/matchcore/domain"
)

// ErrInvalidPrice is returned for a limit order whose price is not
// positive.
var ErrInvalidPrice = errors.New("orderfactory: limit price must be positive")

// ErrInvalidQuantity is returned for a non-positive quantity.
var ErrInvalidQuantity = errors.New("orderfactory: quantity must be positive")

// orderCounter is shared by every Factory, so order IDs are unique and
// monotonically increasing across the whole process.
var orderCounter uint64

// Factory mints orders with monotonically increasing decimal IDs.
type Factory struct{}

// NewFactory creates a factory. Every factory draws its IDs from the
// same process-wide counter.
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) nextID() string {
	return strconv.FormatUint(atomic.AddUint64(&orderCounter, 1), 10)
}

// NewLimitOrder validates and mints a limit order. price must be
// positive (a limit order at the market sentinel makes no sense);
// quantity must be positive.
func (f *Factory) NewLimitOrder(symbol string, side domain.Side, price, quantity int64) (*domain.Order, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return domain.NewLimitOrder(f.nextID(), symbol, side, price, quantity), nil
}

// NewMarketOrder validates and mints a market order.
func (f *Factory) NewMarketOrder(symbol string, side domain.Side, quantity int64) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return domain.NewMarketOrder(f.nextID(), symbol, side, quantity), nil
}
