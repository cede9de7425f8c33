package thermalctl

import "math"

// predictResult carries the optimiser's raw output plus the telemetry
// the caller needs to report (spec §4.8): the number of plant steps
// rolled out across all evaluated candidates (candidates × horizon) and
// the winning candidate's cost.
type predictResult struct {
	percent   float64
	horizon   int
	evalCount int
	cost      float64
	shortcut  bool
}

// resolveHorizon implements the linear ramp of spec §4.3: the predictor
// looks further ahead as the error grows, clamped to [min, max] steps.
func resolveHorizon(p Params, errorMagK float64) int {
	low := maxFloat(0, p.SmallErrorThresholdK)
	high := maxFloat(low+1e-6, p.LargeErrorThresholdK)
	minH := maxInt(1, p.HorizonMinSteps)
	maxH := maxInt(minH, p.HorizonMaxSteps)
	switch {
	case errorMagK <= low:
		return minH
	case errorMagK >= high:
		return maxH
	}
	h := lerp(errorMagK, low, high, float64(minH), float64(maxH))
	return maxInt(1, int(math.Round(h)))
}

// predict runs the coarse-to-fine search of spec §4.4 and returns the
// winning candidate along with its evaluation telemetry. lastPercent is
// the previous cycle's committed output (0 if absent): it seeds the
// rollout's valve-lag state and anchors the change-penalty term.
func predict(errorK float64, currentTempC float64, gain, loss float64, lastPercent float64, hasLastPercent bool, p Params) predictResult {
	if errorK <= -p.BandFarK {
		return predictResult{percent: 0, horizon: 0, evalCount: 0, cost: 0, shortcut: true}
	}

	horizon := resolveHorizon(p, math.Abs(errorK))
	alpha := responseAlpha(p)
	stepMinutes := p.StepSeconds / 60
	lossStep := loss * stepMinutes

	startValve := 0.0
	if hasLastPercent {
		startValve = lastPercent
	}

	cost := func(u float64) float64 {
		return rolloutCost(errorK, u, startValve, gain, lossStep, stepMinutes, alpha, horizon, lastPercent, hasLastPercent, p)
	}

	evalCount := 0
	coarseBest, coarseBestCost := 0.0, math.Inf(1)
	for u := 0.0; u <= 100; u += 10 {
		c := cost(u)
		evalCount += horizon
		if c < coarseBestCost {
			coarseBestCost, coarseBest = c, u
		}
	}

	fineBest, fineBestCost := coarseBest, coarseBestCost
	for u := coarseBest - 10; u <= coarseBest+10; u += 2 {
		if u < 0 || u > 100 {
			continue
		}
		c := cost(u)
		evalCount += horizon
		if c < fineBestCost {
			fineBestCost, fineBest = c, u
		}
	}

	return predictResult{percent: fineBest, horizon: horizon, evalCount: evalCount, cost: fineBestCost}
}

// rolloutCost rolls the plant model forward horizon steps under a
// constant candidate command u, following the valve-lag dynamics of
// spec §4.4 step 3, and returns the accumulated squared-error cost plus
// control and change penalties.
func rolloutCost(errorK, u, startValve, gain, lossStep, stepMinutes, alpha float64, horizon int, lastPercent float64, hasLastPercent bool, p Params) float64 {
	futureError := errorK
	valveState := startValve
	cost := 0.0
	for i := 0; i < horizon; i++ {
		valveState += (u - valveState) * alpha
		heatingEffect := gain * stepMinutes * (valveState / 100)
		futureError = futureError*(1+lossStep) - heatingEffect
		cost += futureError * futureError
	}
	cost += p.ControlPenalty * (u * u)
	if hasLastPercent {
		cost += p.ChangePenalty * math.Abs(u-lastPercent)
	}
	return cost
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
