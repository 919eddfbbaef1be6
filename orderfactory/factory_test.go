package orderfactory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLimitOrderMintsDistinctMonotonicIDs(t *testing.T) {
	f := NewFactory()

	a, err := f.NewLimitOrder("AAPL", 0, 150, 10)
	require.NoError(t, err)
	b, err := f.NewLimitOrder("AAPL", 0, 150, 10)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestNewLimitOrderRejectsNonPositivePrice(t *testing.T) {
	f := NewFactory()
	_, err := f.NewLimitOrder("AAPL", 0, 0, 10)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = f.NewLimitOrder("AAPL", 0, -5, 10)
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestNewLimitOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := NewFactory()
	_, err := f.NewLimitOrder("AAPL", 0, 150, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewMarketOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := NewFactory()
	_, err := f.NewMarketOrder("AAPL", 0, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewMarketOrderMintsValidOrder(t *testing.T) {
	f := NewFactory()
	o, err := f.NewMarketOrder("AAPL", 0, 10)
	require.NoError(t, err)
	require.True(t, o.IsMarket())
}
