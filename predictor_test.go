package thermalctl

import (
	"math"
	"testing"
)

func TestResolveHorizon(t *testing.T) {
	p := NewParams(WithHorizon(6, 36, 0.15, 1.0))

	t.Run("small error uses minimum horizon", func(t *testing.T) {
		if h := resolveHorizon(p, 0.05); h != 6 {
			t.Errorf("resolveHorizon(0.05) = %v, want 6", h)
		}
	})

	t.Run("large error uses maximum horizon", func(t *testing.T) {
		if h := resolveHorizon(p, 2.0); h != 36 {
			t.Errorf("resolveHorizon(2.0) = %v, want 36", h)
		}
	})

	t.Run("mid error ramps linearly", func(t *testing.T) {
		h := resolveHorizon(p, (0.15+1.0)/2)
		if h < 6 || h > 36 {
			t.Errorf("resolveHorizon(mid) = %v, want within [6,36]", h)
		}
	})
}

func TestPredictShortcutOnOvershoot(t *testing.T) {
	p := NewParams()
	res := predict(-0.3, 22.3, p.GainDefault, p.LossDefault, 0, false, p)
	if !res.shortcut || res.percent != 0 || res.evalCount != 0 {
		t.Errorf("predict() with error<=-band_far = %+v, want shortcut with percent=0 eval_count=0", res)
	}
}

func TestPredictDemandHeatingProducesNonZero(t *testing.T) {
	p := NewParams()
	res := predict(1.5, 20.5, p.GainDefault, p.LossDefault, 0, false, p)
	if res.shortcut {
		t.Fatal("predict() shortcut unexpectedly on a positive demand error")
	}
	if res.percent <= 0 {
		t.Errorf("predict() percent = %v, want > 0 under sustained demand", res.percent)
	}
	if res.percent < 0 || res.percent > 100 {
		t.Errorf("predict() percent = %v, out of [0,100]", res.percent)
	}
}

func TestPredictPullsTowardLastPercentViaChangePenalty(t *testing.T) {
	p := NewParams(WithCostWeights(0.0003, 5.0))
	withHistory := predict(0.5, 21.0, p.GainDefault, p.LossDefault, 40, true, p)
	withoutHistory := predict(0.5, 21.0, p.GainDefault, p.LossDefault, 0, false, p)

	if withHistory.percent == withoutHistory.percent {
		t.Skip("change penalty had no measurable effect at these parameters")
	}
	if math.Abs(withHistory.percent-40) >= math.Abs(withoutHistory.percent-40) {
		t.Errorf("predict() with last_percent=40 chose %v, not closer to 40 than %v chosen without history", withHistory.percent, withoutHistory.percent)
	}
}
