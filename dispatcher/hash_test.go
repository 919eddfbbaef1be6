package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaneHashDeterministic(t *testing.T) {
	require.Equal(t, laneHash("AAPL"), laneHash("AAPL"))
}

func TestLaneHashMatchesFormula(t *testing.T) {
	var want uint64
	for _, b := range []byte("AAPL") {
		want = want*31 + uint64(b)
	}
	require.Equal(t, want, laneHash("AAPL"))
}

func TestLaneForStableAssignment(t *testing.T) {
	first := laneFor("MSFT", 4)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, laneFor("MSFT", 4))
	}
}

func TestLaneForWithinRange(t *testing.T) {
	for _, s := range []string{"AAPL", "MSFT", "GOOG", "", "A"} {
		idx := laneFor(s, 4)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 4)
	}
}
