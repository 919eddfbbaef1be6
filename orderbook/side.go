package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/duskline/matchcore/domain"
)

// bookSide is one side (bids or asks) of an order book: a red-black
// tree of priceLevel nodes keyed by price, ordered so that the best
// price is always the tree's leftmost node. Descending=true gives
// bids (highest price first); false gives asks (lowest price first).
//
// Grounded on ShardedPriceTree (orderbook/price_tree_sharded.go), which
// pairs a gods redblacktree with a FIFO list per level — this is the
// same shape with the bucket-sharding layer removed, since a plain
// price-keyed tree already gives the O(log n) add/cancel the book
// requires.
type bookSide struct {
	tree *rbt.Tree[int64, *priceLevel]
}

func newBookSide(descending bool) *bookSide {
	cmp := func(a, b int64) int {
		switch {
		case a == b:
			return 0
		case descending:
			if a > b {
				return -1
			}
			return 1
		default:
			if a < b {
				return -1
			}
			return 1
		}
	}
	return &bookSide{tree: rbt.NewWith[int64, *priceLevel](cmp)}
}

func (s *bookSide) insert(o *domain.Order) {
	level, ok := s.tree.Get(o.Price)
	if !ok {
		level = newPriceLevel(o.Price)
		s.tree.Put(o.Price, level)
	}
	level.push(o)
}

// removeAt removes o from the level at its price, dropping the level
// entirely once it is empty.
func (s *bookSide) removeAt(o *domain.Order) {
	level, ok := s.tree.Get(o.Price)
	if !ok {
		return
	}
	level.remove(o)
	if level.empty() {
		s.tree.Remove(o.Price)
	}
}

// best returns the best (first-priority) price level, or nil if empty.
func (s *bookSide) best() *priceLevel {
	node := s.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

func (s *bookSide) bestPrice() int64 {
	if level := s.best(); level != nil {
		return level.price
	}
	return 0
}

// sizeAt sums the remaining quantity across resting orders at exactly
// price. It looks the level up directly by price and sums its orders,
// so quantities decremented in place by partial fills are counted as
// they stand now.
func (s *bookSide) sizeAt(price int64) int64 {
	level, ok := s.tree.Get(price)
	if !ok {
		return 0
	}
	var total int64
	for _, o := range level.snapshot() {
		total += o.Quantity
	}
	return total
}

// all returns every resting order, level by level, in priority order.
func (s *bookSide) all() []*domain.Order {
	it := s.tree.Iterator()
	var out []*domain.Order
	for it.Next() {
		out = append(out, it.Value().snapshot()...)
	}
	return out
}
