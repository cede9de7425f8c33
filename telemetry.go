package thermalctl

import "math"

// debugDecimals is the rounding precision applied to every float in the
// telemetry payload (spec §4.8: "typically 2-4 decimals"). Fixed
// precision keeps property-test comparisons stable across platforms.
const debugDecimals = 4

// round rounds v to the nearest value with debugDecimals decimal places.
func round(v float64) float64 {
	scale := math.Pow(10, debugDecimals)
	return math.Round(v*scale) / scale
}

// roundPtr rounds an optional float for inclusion in the debug map,
// returning nil unchanged so absent fields stay absent rather than
// becoming zero.
func roundPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return round(*v)
}

// cycleTelemetry carries everything buildDebug needs to assemble the
// deterministic payload of spec §4.8; it is populated incrementally by
// Compute as each component runs.
type cycleTelemetry struct {
	deltaT             float64
	rawPercent         float64
	smoothPercent      float64
	percentOut         int
	flowCapK           float64
	setpointEffC       *float64
	gain               float64
	loss               float64
	horizon            int
	evalCount          int
	cost               float64
	hasMinEffective    bool
	minEffectivePct    float64
	deadZoneHits       int
	trvTempDelta       *float64
	trvTimeDeltaS      *float64
	hasEMASlope        bool
	emaSlope           float64
	forceOpen          bool
	forceClose         bool
	tooSoon            bool
	targetChanged      bool
}

// buildDebug renders t into the rounded, deterministic map described by
// spec §4.8. No side effects: it only reads t.
func buildDebug(t cycleTelemetry) map[string]any {
	out := map[string]any{
		"delta_T":        round(t.deltaT),
		"raw_percent":    round(t.rawPercent),
		"smooth_percent": round(t.smoothPercent),
		"percent_out":    t.percentOut,
		"flow_cap_K":     round(t.flowCapK),
		"gain":           round(t.gain),
		"loss":           round(t.loss),
		"horizon":        t.horizon,
		"eval_count":     t.evalCount,
		"cost":           round(t.cost),
		"dead_zone_hits": t.deadZoneHits,
		"force_open":     t.forceOpen,
		"force_close":    t.forceClose,
		"too_soon":       t.tooSoon,
		"target_changed": t.targetChanged,
	}
	if t.setpointEffC != nil {
		out["setpoint_eff_C"] = round(*t.setpointEffC)
	}
	if t.hasMinEffective {
		out["min_effective_percent"] = round(t.minEffectivePct)
	}
	if t.trvTempDelta != nil {
		out["trv_temp_delta"] = round(*t.trvTempDelta)
	}
	if t.trvTimeDeltaS != nil {
		out["trv_time_delta_s"] = round(*t.trvTimeDeltaS)
	}
	if t.hasEMASlope {
		out["ema_slope"] = round(t.emaSlope)
	}
	return out
}
