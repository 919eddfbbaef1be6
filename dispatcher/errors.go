package dispatcher

import "errors"

// ErrNotRunning is returned by SubmitOrder/CancelOrder when the
// dispatcher hasn't been started, or has already been stopped.
var ErrNotRunning = errors.New("dispatcher: not running")

// ErrAbsentOrder is returned by SubmitOrder when order is nil.
var ErrAbsentOrder = errors.New("dispatcher: order is nil")
