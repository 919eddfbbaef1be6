package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskline/matchcore/domain"
)

func TestNoCrossLimitRests(t *testing.T) {
	e := NewMatchingEngine()

	buy := domain.NewLimitOrder("b1", "AAPL", domain.SideBuy, 150, 100)
	trades := e.ProcessOrder(buy)

	require.Empty(t, trades)
	require.Equal(t, int64(150), e.BestBidPrice("AAPL"))
	require.Equal(t, int64(100), e.BidSize("AAPL", 150))
}

func TestFullCross(t *testing.T) {
	e := NewMatchingEngine()
	_ = e.ProcessOrder(domain.NewLimitOrder("sell1", "AAPL", domain.SideSell, 150, 100))

	trades := e.ProcessOrder(domain.NewLimitOrder("buy1", "AAPL", domain.SideBuy, 150, 50))

	require.Len(t, trades, 1)
	tr := trades[0]
	require.Equal(t, int64(150), tr.Price)
	require.Equal(t, int64(50), tr.Quantity)
	require.Equal(t, "buy1", tr.BuyOrderID)
	require.Equal(t, "sell1", tr.SellOrderID)
	require.Equal(t, int64(50), e.AskSize("AAPL", 150))
	require.Equal(t, int64(0), e.BestBidPrice("AAPL"))
}

func TestSweepMultipleLevels(t *testing.T) {
	e := NewMatchingEngine()
	_ = e.ProcessOrder(domain.NewLimitOrder("s1", "AAPL", domain.SideSell, 150, 50))
	_ = e.ProcessOrder(domain.NewLimitOrder("s2", "AAPL", domain.SideSell, 155, 50))
	_ = e.ProcessOrder(domain.NewLimitOrder("s3", "AAPL", domain.SideSell, 160, 50))

	trades := e.ProcessOrder(domain.NewLimitOrder("buy1", "AAPL", domain.SideBuy, 160, 150))

	require.Len(t, trades, 3)
	wantPrices := []int64{150, 155, 160}
	for i, tr := range trades {
		require.Equal(t, wantPrices[i], tr.Price, "trade %d price", i)
		require.Equal(t, int64(50), tr.Quantity, "trade %d quantity", i)
	}
	require.Equal(t, int64(0), e.BestAskPrice("AAPL"))
	require.Equal(t, int64(0), e.BestBidPrice("AAPL"))
}

func TestMarketBuyEmptyAsksYieldsNoTrades(t *testing.T) {
	e := NewMatchingEngine()
	trades := e.ProcessOrder(domain.NewMarketOrder("m1", "AAPL", domain.SideBuy, 50))

	require.Empty(t, trades)
	require.Equal(t, int64(0), e.BestBidPrice("AAPL"), "the market order must not rest")
}

func TestMarketBuyPartialDiscardsResidual(t *testing.T) {
	e := NewMatchingEngine()
	_ = e.ProcessOrder(domain.NewLimitOrder("s1", "AAPL", domain.SideSell, 150, 30))

	trades := e.ProcessOrder(domain.NewMarketOrder("m1", "AAPL", domain.SideBuy, 50))

	require.Len(t, trades, 1)
	require.Equal(t, int64(150), trades[0].Price)
	require.Equal(t, int64(30), trades[0].Quantity)
	require.Equal(t, int64(0), e.BestAskPrice("AAPL"), "the ask must be fully consumed")
	require.Equal(t, int64(0), e.BestBidPrice("AAPL"), "the residual must be discarded, not rested")
}

func TestCancelAdvisoryAfterFill(t *testing.T) {
	e := NewMatchingEngine()
	_ = e.ProcessOrder(domain.NewLimitOrder("s1", "AAPL", domain.SideSell, 150, 50))
	_ = e.ProcessOrder(domain.NewLimitOrder("b1", "AAPL", domain.SideBuy, 150, 50))

	require.False(t, e.CancelOrder("s1", "AAPL"), "a fully filled order cannot be cancelled")
}

func TestCancelUnknownSymbol(t *testing.T) {
	e := NewMatchingEngine()
	require.False(t, e.CancelOrder("anything", "NOPE"))
}

func TestAddSymbolIdempotence(t *testing.T) {
	e := NewMatchingEngine()
	require.True(t, e.AddSymbol("AAPL"))
	require.False(t, e.AddSymbol("AAPL"))
}

func TestProcessOrderAutoCreatesBook(t *testing.T) {
	e := NewMatchingEngine()
	require.False(t, e.HasSymbol("AAPL"))
	_ = e.ProcessOrder(domain.NewLimitOrder("b1", "AAPL", domain.SideBuy, 150, 10))
	require.True(t, e.HasSymbol("AAPL"))
}

func TestTradePriceIsAlwaysThePassiveSide(t *testing.T) {
	e := NewMatchingEngine()
	_ = e.ProcessOrder(domain.NewLimitOrder("s1", "AAPL", domain.SideSell, 150, 100))

	trades := e.ProcessOrder(domain.NewLimitOrder("b1", "AAPL", domain.SideBuy, 160, 100))
	require.Len(t, trades, 1)
	require.Equal(t, int64(150), trades[0].Price, "trade must execute at the resting (passive) price")
}
