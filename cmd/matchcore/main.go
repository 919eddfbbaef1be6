// Command matchcore is a small illustrative driver: it wires a
// dispatcher, registers logging observers, and submits a handful of
// orders for a demo symbol. It is not part of the core's tested
// surface.
package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/duskline/matchcore/dispatcher"
	"github.com/duskline/matchcore/domain"
	"github.com/duskline/matchcore/orderfactory"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	engine := dispatcher.New(dispatcher.Options{NumLanes: 4, Logger: logger})
	engine.Start()
	defer engine.Stop()

	engine.RegisterTradeObserver(func(t *domain.Trade) {
		fmt.Printf("trade %s: %s %d @ %d (buy=%s sell=%s)\n",
			t.ID, t.Symbol, t.Quantity, t.Price, t.BuyOrderID, t.SellOrderID)
	})
	engine.RegisterOrderObserver(func(r *dispatcher.OrderResult) {
		fmt.Printf("order %s: %s (%d trades)\n", r.OrderID, r.Status, len(r.Trades))
	})

	factory := orderfactory.NewFactory()

	sell, _ := factory.NewLimitOrder("AAPL", domain.SideSell, 1500000, 100)
	_ = engine.SubmitOrder(sell)

	buy, _ := factory.NewLimitOrder("AAPL", domain.SideBuy, 1500000, 50)
	_ = engine.SubmitOrder(buy)

	time.Sleep(50 * time.Millisecond)
}
