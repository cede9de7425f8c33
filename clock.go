package thermalctl

import "time"

// Clock supplies the monotonic second count Compute uses for rate-limit
// and dead-zone timing. The spec requires injectability for testing
// (§6.1); production callers use MonotonicClock, tests use a fixed or
// stepped function literal.
type Clock func() float64

// MonotonicClock returns a Clock backed by time.Now's monotonic reading,
// expressed as fractional seconds since an arbitrary, process-local
// epoch. Only differences between readings are meaningful.
func MonotonicClock() Clock {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}
