package thermalctl

// Phase distinguishes the heating and cooling branches of the plant model
// (spec §4.3): gain and loss are learned independently per phase, but a
// given cycle always reads the phase implied by the current error sign.
type Phase int

const (
	PhaseHeating Phase = iota
	PhaseCooling
)

// Profile is the TRV response classification produced by slow background
// observation (spec §4.3). It is advisory telemetry only: the predictor's
// numeric behaviour never depends on it.
type Profile string

const (
	ProfileUnknown     Profile = "unknown"
	ProfileLinear      Profile = "linear"
	ProfileThreshold   Profile = "threshold"
	ProfileExponential Profile = "exponential"
)

// profileSample is one (commanded percent, observed rate) pair accumulated
// for response-profile classification.
type profileSample struct {
	percent float64
	rateKPM float64
}

// phaseEstimate holds one phase's online gain or loss estimate plus its
// bounded outlier-rejection sample buffer (spec §3.3, §4.3).
type phaseEstimate struct {
	value   float64
	samples []float64
}

// State is the persistent, per-key estimator and controller record (spec
// §3.3). A State is created by Store.GetOrCreate with phase estimates
// seeded from Params defaults and is never deleted implicitly; the host
// resets it explicitly via Store.Reset.
type State struct {
	// Controller bookkeeping.
	hasLastPercent bool
	lastPercent    float64
	lastUpdateTS   float64
	lastHoldTS     float64
	hasLastTarget  bool
	lastTargetC    float64
	hasLastTempC   bool
	lastTempC      float64
	lastTempTS     float64

	// Plant model, one estimate per phase (spec §4.3: "gain and loss are
	// learned per phase (heating vs. cooling)"). The predictor and
	// telemetry read whichever pair the current error sign implies.
	gainHeat phaseEstimate
	gainCool phaseEstimate
	lossHeat phaseEstimate
	lossCool phaseEstimate

	// Dead-zone learning.
	hasMinEffective   bool
	minEffectivePct   float64
	deadZoneHits      int
	hasLastTRVTemp    bool
	lastTRVTempC      float64
	lastTRVTempTS     float64

	// Telemetry-only smoothing.
	hasEMASlope bool
	emaSlope    float64

	// TRV response profiling.
	profile           Profile
	profileConfidence float64
	profileSamples    []profileSample

	// Reserved; not required for MVP conformance (spec §3.3, §9).
	isCalibrationActive bool
	calibrationProbeID  string
}

// newState returns a freshly seeded record: both phase estimates at the
// configured defaults, no history, profile unknown.
func newState(p Params) *State {
	return &State{
		gainHeat: phaseEstimate{value: p.GainDefault},
		gainCool: phaseEstimate{value: p.GainDefault},
		lossHeat: phaseEstimate{value: p.LossDefault},
		lossCool: phaseEstimate{value: p.LossDefault},
		profile:  ProfileUnknown,
	}
}

// gainFor and lossFor return the phase-specific estimate active for the
// given direction (spec §4.3). The predictor and the telemetry gain/loss
// read the pair implied by the current error sign; adapt updates the pair
// implied by the sign of the observed temperature rate. gain_est/loss_est
// in the persisted record are always the heating-phase value, the one the
// spec's scenarios (§8.3) and persisted-field names address.
func (s *State) gainFor(ph Phase) *phaseEstimate {
	if ph == PhaseCooling {
		return &s.gainCool
	}
	return &s.gainHeat
}

func (s *State) lossFor(ph Phase) *phaseEstimate {
	if ph == PhaseCooling {
		return &s.lossCool
	}
	return &s.lossHeat
}
