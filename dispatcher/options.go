package dispatcher

import "go.uber.org/zap"

const defaultNumLanes = 4

// Options configures a ContinuousEngine. There is no environment
// variable or file-based configuration — the dispatcher recognizes
// exactly one tunable, the lane count.
type Options struct {
	// NumLanes is the fixed number of worker lanes. Defaults to 4.
	NumLanes int
	// Logger receives diagnostic logging (rejected submits, recovered
	// observer panics). Defaults to a no-op logger.
	Logger *zap.Logger
	// Metrics receives operational counters. Defaults to a no-op
	// recorder.
	Metrics Recorder
}

func (o Options) withDefaults() Options {
	if o.NumLanes <= 0 {
		o.NumLanes = defaultNumLanes
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Metrics == nil {
		o.Metrics = noopRecorder{}
	}
	return o
}
