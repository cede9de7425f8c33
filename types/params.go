package types

import "fmt"

// Params holds the immutable, per-cycle configuration for Compute (spec
// §3.2). Build one with DefaultParams and override the handful of fields
// that matter for a given room; most callers never touch the rest.
type Params struct {
	// Horizon & time step.
	StepSeconds          float64
	RoomTimeConstantS    float64
	HorizonMinSteps      int
	HorizonMaxSteps      int
	SmallErrorThresholdK float64
	LargeErrorThresholdK float64

	// Plant bounds. GainDefault/LossDefault seed a freshly created state
	// record and are the estimate used until adaptation has a sample.
	GainMin, GainMax float64
	LossMin, LossMax float64
	GainDefault      float64
	LossDefault      float64
	DeadzoneMin      float64
	DeadzoneMax      float64

	// Adaptation.
	AdaptEnabled bool
	AdaptAlpha   float64
	AdaptWindow  int
	OutlierSigma float64

	// Cost weights.
	ControlPenalty float64
	ChangePenalty  float64

	// Smoothing / rate limit.
	HysteresisPts       float64
	MinUpdateIntervalS  float64
	MinPercentHoldTimeS float64
	DuMaxPct            float64

	// BandFarK is the overshoot band used both for the predictor's
	// shortcut-to-zero (error <= -BandFarK) and the post-processor's
	// force-open/force-close guards (spec §4.4, §4.5).
	BandFarK float64

	// Dead-zone learning.
	DZThresholdPct float64
	DZTempDeltaK   float64
	DZTimeS        float64
	DZHitsRequired int
	DZRaisePct     float64
	DZDecayPct     float64

	// Flow-cap.
	CapMaxK float64

	// Distribution.
	KPctPerK float64

	// TRV response profiling.
	ProfileSampleFloor     int
	ProfileConfidenceFloor float64
}

// DefaultParams returns the parameter set used by the reference
// implementation this core was distilled from
// (better_thermostat/utils/mpc.py's MpcParams dataclass). Spec.md treats
// these as informative, not normative — tests should set the parameters
// they care about explicitly.
func DefaultParams() Params {
	return Params{
		StepSeconds:            300,
		RoomTimeConstantS:      600,
		HorizonMinSteps:        6,
		HorizonMaxSteps:        36,
		SmallErrorThresholdK:   0.15,
		LargeErrorThresholdK:   1.0,
		GainMin:                0.005,
		GainMax:                0.5,
		LossMin:                0,
		LossMax:                0.05,
		GainDefault:            0.1,
		LossDefault:            0.01,
		DeadzoneMin:            0,
		DeadzoneMax:            100,
		AdaptEnabled:           true,
		AdaptAlpha:             0.1,
		AdaptWindow:            5,
		OutlierSigma:           2.5,
		ControlPenalty:         0.0003,
		ChangePenalty:          0.005,
		HysteresisPts:          0.5,
		MinUpdateIntervalS:     60,
		MinPercentHoldTimeS:    0,
		DuMaxPct:               100,
		BandFarK:               0.3,
		DZThresholdPct:         20,
		DZTempDeltaK:           0.1,
		DZTimeS:                300,
		DZHitsRequired:         3,
		DZRaisePct:             2,
		DZDecayPct:             1,
		CapMaxK:                0.8,
		KPctPerK:               8,
		ProfileSampleFloor:     10,
		ProfileConfidenceFloor: 0.6,
	}
}

// Validate reports the first configuration value outside its documented
// domain, wrapped in ErrInvalidParams. A zero-value HorizonMaxSteps or
// similar "forgot to call DefaultParams" mistake is caught here rather
// than producing silently degenerate cycles.
func (p Params) Validate() error {
	switch {
	case p.StepSeconds <= 0:
		return fmt.Errorf("%w: step_seconds must be > 0, got %v", ErrInvalidParams, p.StepSeconds)
	case p.RoomTimeConstantS <= 0:
		return fmt.Errorf("%w: room_time_constant_s must be > 0, got %v", ErrInvalidParams, p.RoomTimeConstantS)
	case p.HorizonMinSteps < 1:
		return fmt.Errorf("%w: horizon_min_steps must be >= 1, got %v", ErrInvalidParams, p.HorizonMinSteps)
	case p.HorizonMaxSteps < p.HorizonMinSteps:
		return fmt.Errorf("%w: horizon_max_steps must be >= horizon_min_steps", ErrInvalidParams)
	case p.GainMin < 0 || p.GainMax < p.GainMin:
		return fmt.Errorf("%w: gain bounds invalid (min=%v max=%v)", ErrInvalidParams, p.GainMin, p.GainMax)
	case p.LossMin < 0 || p.LossMax < p.LossMin:
		return fmt.Errorf("%w: loss bounds invalid (min=%v max=%v)", ErrInvalidParams, p.LossMin, p.LossMax)
	case p.DeadzoneMin < 0 || p.DeadzoneMax < p.DeadzoneMin:
		return fmt.Errorf("%w: deadzone bounds invalid (min=%v max=%v)", ErrInvalidParams, p.DeadzoneMin, p.DeadzoneMax)
	case p.GainDefault < p.GainMin || p.GainDefault > p.GainMax:
		return fmt.Errorf("%w: gain_default %v outside [gain_min,gain_max]", ErrInvalidParams, p.GainDefault)
	case p.LossDefault < p.LossMin || p.LossDefault > p.LossMax:
		return fmt.Errorf("%w: loss_default %v outside [loss_min,loss_max]", ErrInvalidParams, p.LossDefault)
	case p.AdaptAlpha < 0 || p.AdaptAlpha > 1:
		return fmt.Errorf("%w: adapt_alpha must be in [0,1], got %v", ErrInvalidParams, p.AdaptAlpha)
	case p.AdaptWindow < 1:
		return fmt.Errorf("%w: adapt_window must be >= 1, got %v", ErrInvalidParams, p.AdaptWindow)
	case p.OutlierSigma < 0:
		return fmt.Errorf("%w: outlier_sigma must be >= 0, got %v", ErrInvalidParams, p.OutlierSigma)
	case p.ControlPenalty < 0 || p.ChangePenalty < 0:
		return fmt.Errorf("%w: cost penalties must be >= 0", ErrInvalidParams)
	case p.HysteresisPts < 0:
		return fmt.Errorf("%w: hysteresis_pts must be >= 0, got %v", ErrInvalidParams, p.HysteresisPts)
	case p.MinUpdateIntervalS < 0 || p.MinPercentHoldTimeS < 0 || p.DuMaxPct < 0:
		return fmt.Errorf("%w: smoothing/rate-limit values must be >= 0", ErrInvalidParams)
	case p.CapMaxK < 0:
		return fmt.Errorf("%w: cap_max_K must be >= 0, got %v", ErrInvalidParams, p.CapMaxK)
	case p.DZHitsRequired < 0:
		return fmt.Errorf("%w: dz_hits_required must be >= 0, got %v", ErrInvalidParams, p.DZHitsRequired)
	}
	return nil
}
