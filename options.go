package thermalctl

import "github.com/merritt-h/thermalctl/types"

// ParamOption configures a types.Params built by NewParams, mirroring
// the functional-options style used throughout this module's teacher
// (see transport.Option): each option mutates one field of a
// defaults-seeded value, so callers only name what they're overriding.
type ParamOption func(*types.Params)

// NewParams returns types.DefaultParams with opts applied in order.
func NewParams(opts ...ParamOption) types.Params {
	p := types.DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithStep sets the control-loop step size and the room's first-order
// thermal time constant.
func WithStep(stepSeconds, roomTimeConstantS float64) ParamOption {
	return func(p *types.Params) {
		p.StepSeconds = stepSeconds
		p.RoomTimeConstantS = roomTimeConstantS
	}
}

// WithHorizon sets the predictor's dynamic horizon range and the error
// thresholds that ramp between them.
func WithHorizon(minSteps, maxSteps int, smallErrorK, largeErrorK float64) ParamOption {
	return func(p *types.Params) {
		p.HorizonMinSteps = minSteps
		p.HorizonMaxSteps = maxSteps
		p.SmallErrorThresholdK = smallErrorK
		p.LargeErrorThresholdK = largeErrorK
	}
}

// WithAdaptation enables or disables online gain/loss learning and sets
// its EMA rate and outlier rejection sigma.
func WithAdaptation(enabled bool, alpha float64, window int, outlierSigma float64) ParamOption {
	return func(p *types.Params) {
		p.AdaptEnabled = enabled
		p.AdaptAlpha = alpha
		p.AdaptWindow = window
		p.OutlierSigma = outlierSigma
	}
}

// WithCostWeights sets the predictor's control and change penalties.
func WithCostWeights(controlPenalty, changePenalty float64) ParamOption {
	return func(p *types.Params) {
		p.ControlPenalty = controlPenalty
		p.ChangePenalty = changePenalty
	}
}

// WithRateLimit sets the post-processor's hysteresis band, minimum
// interval between committed updates, minimum hold time, and maximum
// per-cycle rate of change.
func WithRateLimit(hysteresisPts, minUpdateIntervalS, minHoldTimeS, duMaxPct float64) ParamOption {
	return func(p *types.Params) {
		p.HysteresisPts = hysteresisPts
		p.MinUpdateIntervalS = minUpdateIntervalS
		p.MinPercentHoldTimeS = minHoldTimeS
		p.DuMaxPct = duMaxPct
	}
}

// WithDeadZone sets the parameters governing minimum-effective-percent
// learning.
func WithDeadZone(thresholdPct, tempDeltaK, timeS float64, hitsRequired int, raisePct, decayPct float64) ParamOption {
	return func(p *types.Params) {
		p.DZThresholdPct = thresholdPct
		p.DZTempDeltaK = tempDeltaK
		p.DZTimeS = timeS
		p.DZHitsRequired = hitsRequired
		p.DZRaisePct = raisePct
		p.DZDecayPct = decayPct
	}
}

// WithFlowCap sets the maximum equivalent setpoint reduction emitted for
// a fully closed valve.
func WithFlowCap(capMaxK float64) ParamOption {
	return func(p *types.Params) { p.CapMaxK = capMaxK }
}

// WithDistribution sets the per-Kelvin compensation used when splitting
// a group command across co-located TRVs.
func WithDistribution(kPctPerK float64) ParamOption {
	return func(p *types.Params) { p.KPctPerK = kPctPerK }
}
