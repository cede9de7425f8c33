package thermalctl

import "testing"

func TestRound(t *testing.T) {
	if got := round(1.23456789); got != 1.2346 {
		t.Errorf("round(1.23456789) = %v, want 1.2346", got)
	}
}

func TestBuildDebugOmitsAbsentOptionalFields(t *testing.T) {
	debug := buildDebug(cycleTelemetry{percentOut: 10})
	if _, ok := debug["setpoint_eff_C"]; ok {
		t.Error("setpoint_eff_C present despite nil pointer")
	}
	if _, ok := debug["min_effective_percent"]; ok {
		t.Error("min_effective_percent present despite hasMinEffective=false")
	}
	if debug["percent_out"] != 10 {
		t.Errorf("percent_out = %v, want 10", debug["percent_out"])
	}
}

func TestBuildDebugIncludesPresentOptionalFields(t *testing.T) {
	minEff := 12.0
	slope := 0.01
	debug := buildDebug(cycleTelemetry{
		percentOut:      40,
		hasMinEffective: true,
		minEffectivePct: minEff,
		hasEMASlope:     true,
		emaSlope:        slope,
	})
	if debug["min_effective_percent"] != round(minEff) {
		t.Errorf("min_effective_percent = %v, want %v", debug["min_effective_percent"], round(minEff))
	}
	if debug["ema_slope"] != round(slope) {
		t.Errorf("ema_slope = %v, want %v", debug["ema_slope"], round(slope))
	}
}

func TestBuildDebugDeterministic(t *testing.T) {
	telem := cycleTelemetry{deltaT: 1.0 / 3, percentOut: 33}
	a := buildDebug(telem)
	b := buildDebug(telem)
	if a["delta_T"] != b["delta_T"] {
		t.Errorf("buildDebug not deterministic across calls: %v != %v", a["delta_T"], b["delta_T"])
	}
}
