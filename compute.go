package thermalctl

import "github.com/merritt-h/thermalctl/types"

// staleStateThresholdS is how far a gap between consecutive samples can
// be before the adaptation step treats the prior sample as unusable
// rather than computing a dt across it (spec §7 StaleState: "last_update
// far in the past ... treat as first cycle"). The reference
// implementation leaves the exact threshold unspecified; six hours is
// long enough that normal polling gaps never trip it, short enough that
// an overnight integration restart does.
const staleStateThresholdS = 6 * 3600

// Compute runs one control cycle for a single room/TRV key (spec §6.1).
// It looks up (creating if necessary) the key's persistent state in st,
// applies adaptation, prediction, and post-processing, and returns the
// resulting command. The state record is mutated in place; callers that
// need the updated record can read it back via st.GetOrCreate(in.Key) or
// via st.Snapshot.
//
// clk supplies the monotonic second count driving rate-limit, hold-time,
// and dead-zone timing; production callers pass MonotonicClock(), tests
// inject a fixed or stepped function.
func Compute(in types.Input, p types.Params, st *Store, clk Clock) (types.Output, error) {
	if err := p.Validate(); err != nil {
		return types.Output{}, err
	}

	params := p
	s := st.GetOrCreate(in.Key)
	now := clk()

	if in.WindowOpen || !in.HeatingAllowed {
		return computeBlocked(s, params, in), nil
	}

	hasTarget := in.TargetTempC != nil
	hasCurrent := in.CurrentTempC != nil

	var errorK float64
	var targetPtr *float64
	if hasTarget {
		t := *in.TargetTempC
		targetPtr = &t
	}

	if hasCurrent {
		runAdaptation(s, params, *in.CurrentTempC, now)
	}

	var rawPercent float64
	var pr predictResult
	switch {
	case hasTarget && hasCurrent:
		errorK = *in.TargetTempC - *in.CurrentTempC
		ph := phaseFor(errorK)
		gain := s.gainFor(ph).value
		loss := s.lossFor(ph).value
		pr = predict(errorK, *in.CurrentTempC, gain, loss, s.lastPercent, s.hasLastPercent, params)
		rawPercent = pr.percent
	default:
		errorK = 0
		if s.hasLastPercent {
			rawPercent = s.lastPercent
		}
	}

	updateSlopeEMA(s, in.TempSlopeKPerMin)

	out, flags := postProcess(s, params, rawPercent, errorK, targetPtr, now)
	dz := observeDeadZone(s, params, in.TRVTempC, float64(out), errorK, in.ToleranceK, now)

	flowCapK := flowCap(float64(out), params.CapMaxK)
	var setpointEff *float64
	if hasTarget && hasCurrent && *in.CurrentTempC >= *in.TargetTempC {
		setpointEff = effectiveSetpoint(*in.TargetTempC, *in.CurrentTempC, flowCapK)
	}

	deltaT := 0.0
	if hasTarget && hasCurrent {
		deltaT = *in.TargetTempC - *in.CurrentTempC
	}

	phTel := phaseFor(errorK)
	telem := cycleTelemetry{
		deltaT:          deltaT,
		rawPercent:      rawPercent,
		smoothPercent:   rawPercent,
		percentOut:      out,
		flowCapK:        flowCapK,
		setpointEffC:    setpointEff,
		gain:            s.gainFor(phTel).value,
		loss:            s.lossFor(phTel).value,
		horizon:         pr.horizon,
		evalCount:       pr.evalCount,
		cost:            pr.cost,
		hasMinEffective: s.hasMinEffective,
		minEffectivePct: s.minEffectivePct,
		deadZoneHits:    s.deadZoneHits,
		hasEMASlope:     s.hasEMASlope,
		emaSlope:        s.emaSlope,
		forceOpen:       flags.forceOpen,
		forceClose:      flags.forceClose,
		tooSoon:         flags.tooSoon,
		targetChanged:   flags.targetChanged,
	}
	if dz.hasDelta {
		d := dz.trvDeltaK
		t := dz.timeDeltaS
		telem.trvTempDelta = &d
		telem.trvTimeDeltaS = &t
	}

	return types.Output{
		ValvePercent: out,
		FlowCapK:     flowCapK,
		SetpointEffC: setpointEff,
		Debug:        buildDebug(telem),
	}, nil
}

// computeBlocked implements the BlockedHeating branch of spec §7:
// window open or heating disallowed forces a zero command, skips
// adaptation entirely, and preserves every learned estimate untouched.
func computeBlocked(s *State, p Params, in types.Input) types.Output {
	s.hasLastPercent, s.lastPercent = true, 0
	if in.TargetTempC != nil {
		s.hasLastTarget, s.lastTargetC = true, *in.TargetTempC
	}
	flowCapK := flowCap(0, p.CapMaxK)

	ph := phaseFor(0)
	telem := cycleTelemetry{
		percentOut: 0,
		flowCapK:   flowCapK,
		gain:       s.gainFor(ph).value,
		loss:       s.lossFor(ph).value,
	}
	return types.Output{
		ValvePercent: 0,
		FlowCapK:     flowCapK,
		Debug:        buildDebug(telem),
	}
}

// runAdaptation wraps adapt with the StaleState guard (spec §7): a gap
// since the last temperature sample larger than staleStateThresholdS, or
// a clock that moved backward, is treated as if this were the first
// observation rather than fed into the estimators.
func runAdaptation(s *State, p Params, currentTempC, now float64) {
	if s.hasLastTempC {
		dt := now - s.lastTempTS
		if dt > 0 && dt <= staleStateThresholdS {
			priorPercent, priorHasPercent := s.lastPercent, s.hasLastPercent
			if ran, rate := adapt(s, p, currentTempC, dt/60); ran && priorHasPercent {
				observeProfile(s, p, priorPercent, rate)
			}
		} else {
			s.hasLastTempC = false
		}
	}
	s.hasLastTempC, s.lastTempC, s.lastTempTS = true, currentTempC, now
}

// updateSlopeEMA blends an externally supplied slope estimate into the
// per-key smoothed slope used for telemetry and heuristics (spec §3.3
// ema_slope; supplemented with a fixed 0.6/0.4 blend distinct from
// adapt_alpha, per the reference implementation's separate slope filter).
func updateSlopeEMA(s *State, slope *float64) {
	if slope == nil {
		return
	}
	if !s.hasEMASlope {
		s.hasEMASlope, s.emaSlope = true, *slope
		return
	}
	s.emaSlope = 0.6*s.emaSlope + 0.4*(*slope)
}
