package dispatcher

// Recorder receives operational counters from a ContinuousEngine. The
// default Options.Metrics is a no-op so the dispatcher carries no
// hard dependency on any particular metrics backend; see the metrics
// package for a github.com/prometheus/client_golang-backed Recorder.
type Recorder interface {
	OrderSubmitted()
	OrderCancelled()
	TradesExecuted(n int)
	ObserverPanicRecovered()
	LaneQueueDepth(lane, depth int)
}

type noopRecorder struct{}

func (noopRecorder) OrderSubmitted()          {}
func (noopRecorder) OrderCancelled()          {}
func (noopRecorder) TradesExecuted(int)       {}
func (noopRecorder) ObserverPanicRecovered()  {}
func (noopRecorder) LaneQueueDepth(int, int)  {}
