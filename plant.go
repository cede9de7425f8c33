package thermalctl

import (
	"math"

	"github.com/montanaflynn/stats"
)

// responseAlpha is the first-order valve/room lag coefficient (spec
// §4.3, §4.4): 1 - exp(-step_seconds/room_time_constant_s).
func responseAlpha(p Params) float64 {
	return 1 - math.Exp(-p.StepSeconds/p.RoomTimeConstantS)
}

// phaseFor returns the plant phase implied by the current error sign:
// positive error (room colder than target) is the heating phase,
// non-positive error is the cooling/coasting phase (spec §4.3).
func phaseFor(errorK float64) Phase {
	if errorK > 0 {
		return PhaseHeating
	}
	return PhaseCooling
}

// adapt runs one cycle of online gain/loss estimation (spec §4.3). It is
// a no-op unless adaptation is enabled, the previous cycle left a usable
// (last_temp, last_percent, dt>0) triple, and the room is not currently
// blocked from heating. Adaptation never runs on the cycle that created
// the state record (spec §4.4 edge case: "first cycle after state
// creation -> no adaptation step").
//
// It reports whether it ran and, if so, the observed rate it used — the
// caller feeds that pair (previous commanded percent, observed rate)
// into observeProfile for the slower, advisory response-profile
// classification.
func adapt(s *State, p Params, currentTempC, dtMin float64) (ran bool, observedRateKPM float64) {
	if !p.AdaptEnabled || dtMin <= 0 || !s.hasLastTempC || !s.hasLastPercent {
		return false, 0
	}
	observedRate := (currentTempC - s.lastTempC) / dtMin
	ph := phaseFor(observedRate)

	if s.lastPercent > 1 {
		gainCandidate := observedRate / (s.lastPercent / 100)
		updateGain(s.gainFor(ph), p, gainCandidate)
		return true, observedRate
	}
	lossCandidate := maxFloat(0, -observedRate)
	updateLoss(s.lossFor(ph), p, lossCandidate)
	return true, observedRate
}

// updateGain and updateLoss each implement spec §4.3 steps 2-5 for their
// respective estimate: validate the candidate's plausibility, filter it
// against the sample buffer's recent distribution, fold it into the EMA
// (or gently shrink the estimate if the candidate was implausible), push
// it into the bounded buffer, and clamp to configured bounds.

func updateGain(est *phaseEstimate, p Params, candidate float64) {
	if candidate >= 0 && candidate < 10*p.GainMax {
		if accepted, ok := filteredSample(est.samples, candidate, p.OutlierSigma); ok {
			est.value = (1-p.AdaptAlpha)*est.value + p.AdaptAlpha*accepted
			pushSample(&est.samples, accepted, p.AdaptWindow)
		}
	} else {
		est.value *= 1 - 0.5*p.AdaptAlpha
	}
	est.value = clamp(est.value, p.GainMin, p.GainMax)
}

func updateLoss(est *phaseEstimate, p Params, candidate float64) {
	if candidate >= 0 && candidate < 10*p.LossMax {
		if accepted, ok := filteredSample(est.samples, candidate, p.OutlierSigma); ok {
			est.value = (1-p.AdaptAlpha)*est.value + p.AdaptAlpha*accepted
			pushSample(&est.samples, accepted, p.AdaptWindow)
		}
	} else {
		est.value *= 1 - 0.5*p.AdaptAlpha
	}
	est.value = clamp(est.value, p.LossMin, p.LossMax)
}

// filteredSample rejects candidate if the buffer already holds at least
// two samples and candidate deviates from the buffer's mean by more than
// outlierSigma standard deviations (spec §4.3 step 4). With fewer than
// two samples, or a zero sigma, every candidate is accepted.
func filteredSample(buffer []float64, candidate, outlierSigma float64) (float64, bool) {
	if len(buffer) < 2 || outlierSigma <= 0 {
		return candidate, true
	}
	mean, err := stats.Mean(buffer)
	if err != nil {
		return candidate, true
	}
	stddev, err := stats.StandardDeviation(buffer)
	if err != nil || stddev == 0 {
		return candidate, true
	}
	if absFloat(candidate-mean) > outlierSigma*stddev {
		return 0, false
	}
	return candidate, true
}

// pushSample appends v to the ring buffer pointed at by buf, trimming
// its oldest entry once it exceeds window (spec invariant: "sample
// buffers contain at most the configured window size").
func pushSample(buf *[]float64, v float64, window int) {
	*buf = append(*buf, v)
	if window < 1 {
		window = 1
	}
	if len(*buf) > window {
		*buf = (*buf)[len(*buf)-window:]
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
