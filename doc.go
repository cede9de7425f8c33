// Package thermalctl is a predictive, per-room thermostatic-valve
// control core: given a stream of temperature observations and a target
// setpoint, Compute returns a valve-opening percent and/or an effective
// setpoint for a downstream thermostatic radiator valve (TRV).
//
// The package is a pure, synchronous library. It performs no device I/O,
// no scheduling, and no discovery; it does not log. A host integration
// owns the event loop, polls or subscribes to sensors, and feeds
// observations into Compute once per control cycle per room. The only
// side effect anywhere in this package is mutation of the Store passed
// to Compute.
//
// A minimal host loop:
//
//	store := thermalctl.NewStore(thermalctl.NewParams())
//	params := thermalctl.NewParams(thermalctl.WithRateLimit(0.5, 60, 0, 100))
//	key := thermalctl.BuildKey(thermalctl.DefaultControllerID, "livingroom", 21.0)
//	out, err := thermalctl.Compute(types.Input{
//		Key:            key,
//		TargetTempC:    ptr(21.0),
//		CurrentTempC:   ptr(20.3),
//		ToleranceK:     0.3,
//		HeatingAllowed: true,
//	}, params, store, thermalctl.MonotonicClock())
package thermalctl
