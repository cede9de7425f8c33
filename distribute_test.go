package thermalctl

import "testing"

func ptr(v float64) *float64 { return &v }

func TestDistributeThreeTRVs(t *testing.T) {
	locals := map[string]*float64{
		"a": ptr(28.1),
		"b": ptr(24.3),
		"c": ptr(19.5),
	}
	out := Distribute(45, locals, 8)

	if round(out["a"]) != 45 {
		t.Errorf("a = %v, want 45 (warmest TRV)", out["a"])
	}
	if got, want := out["b"], 75.4; round(got) != round(want) {
		t.Errorf("b = %v, want ~%v", got, want)
	}
	if out["c"] != 100 {
		t.Errorf("c = %v, want 100 (clamped)", out["c"])
	}
}

func TestDistributeEmptyMap(t *testing.T) {
	out := Distribute(50, map[string]*float64{}, 8)
	if len(out) != 0 {
		t.Errorf("Distribute(empty) = %v, want empty map", out)
	}
}

func TestDistributeAllTemperaturesNil(t *testing.T) {
	locals := map[string]*float64{"a": nil, "b": nil}
	out := Distribute(30, locals, 8)
	for id, v := range out {
		if v != 30 {
			t.Errorf("%s = %v, want 30 when every local temp is absent", id, v)
		}
	}
}

func TestDistributeNeverReducesBelowTotal(t *testing.T) {
	locals := map[string]*float64{
		"warmest": ptr(25),
		"cooler":  ptr(20),
	}
	out := Distribute(60, locals, 8)
	for id, v := range out {
		if v < 60 {
			t.Errorf("%s got %v, below u_total 60", id, v)
		}
	}
}
