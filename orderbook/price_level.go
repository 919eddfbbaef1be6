package orderbook

import (
	"container/list"

	"github.com/duskline/matchcore/domain"
)

// priceLevel holds every resting order at one exact price, in arrival
// order. The tree that owns a priceLevel never holds more than one
// node per price, so arrival order (time priority) lives entirely in
// the list, not in the tree's comparator.
type priceLevel struct {
	price  int64
	orders *list.List // FIFO of *domain.Order
	volume int64
}

func newPriceLevel(price int64) *priceLevel {
	return &priceLevel{price: price, orders: list.New()}
}

func (pl *priceLevel) push(o *domain.Order) {
	e := pl.orders.PushBack(o)
	o.SetListElement(e)
	pl.volume += o.Quantity
}

// remove drops o from this level in O(1) via its stored list element.
func (pl *priceLevel) remove(o *domain.Order) {
	if e := o.ListElement(); e != nil {
		pl.orders.Remove(e)
		o.SetListElement(nil)
		pl.volume -= o.Quantity
	}
}

func (pl *priceLevel) empty() bool {
	return pl.orders.Len() == 0
}

// front returns the earliest-arrived order at this level, or nil.
func (pl *priceLevel) front() *domain.Order {
	e := pl.orders.Front()
	if e == nil {
		return nil
	}
	return e.Value.(*domain.Order)
}

// snapshot returns every order at this level in arrival order.
func (pl *priceLevel) snapshot() []*domain.Order {
	out := make([]*domain.Order, 0, pl.orders.Len())
	for e := pl.orders.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*domain.Order))
	}
	return out
}
