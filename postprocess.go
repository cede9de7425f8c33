package thermalctl

import "math"

// postFlags records which branches of the post-processor fired, for
// telemetry (spec §4.8: force_open, force_close, too_soon, target_changed).
type postFlags struct {
	targetChanged bool
	forceClose    bool
	forceOpen     bool
	tooSoon       bool
}

// postProcess implements the fixed post-processing pipeline of spec
// §4.5: target-change bypass, force-close, minimum-effective clamp,
// smoothing, hysteresis/rate-limit, rate cap, round and re-clamp. It
// mutates s's controller bookkeeping (last_percent, last_update_ts,
// last_hold_ts) and returns the committed integer percent plus the
// flags that fired.
func postProcess(s *State, p Params, rawPercent float64, errorK float64, targetC *float64, nowS float64) (int, postFlags) {
	var flags postFlags

	targetChanged := targetC != nil && (!s.hasLastTarget || math.Abs(*targetC-s.lastTargetC) >= 0.05)
	flags.targetChanged = targetChanged

	forceClose := errorK <= -p.BandFarK
	flags.forceClose = forceClose

	raw := rawPercent
	if forceClose {
		raw = 0
	}

	if s.hasMinEffective && raw > 0 && raw < s.minEffectivePct {
		raw = s.minEffectivePct
	}

	// Smoothing is intentionally skipped for the MPC predictor: the
	// change_penalty cost term already smooths the raw output, and
	// applying EMA on top double-damps step changes (spec §4.5 step 4 /
	// §9 open question, resolved in favour of skipping EMA for MPC).
	smooth := raw

	last := s.lastPercent
	hasLast := s.hasLastPercent

	// force_open mirrors force_close on the opposite side of the band: a
	// room far below setpoint ramps up immediately instead of waiting out
	// hysteresis/rate-limit/hold (original_source mpc.py:618, 650-653).
	forceOpen := errorK >= p.BandFarK
	flags.forceOpen = forceOpen

	withinHysteresis := hasLast && !targetChanged && !forceOpen && !forceClose &&
		math.Abs(smooth-last) < p.HysteresisPts

	tooSoon := hasLast && !forceOpen && !forceClose && !targetChanged &&
		s.lastUpdateTS != 0 && (nowS-s.lastUpdateTS) < p.MinUpdateIntervalS

	// min_percent_hold_time_s (spec §3.2) gates a change to the
	// committed value independently of min_update_interval_s: the latter
	// throttles how often a new value may be attempted, this throttles
	// how soon the value may move again after it last actually changed.
	tooRecentHold := hasLast && !forceOpen && !forceClose && !targetChanged &&
		s.lastHoldTS != 0 && (nowS-s.lastHoldTS) < p.MinPercentHoldTimeS

	committed := smooth
	switch {
	case withinHysteresis:
		committed = last
	case tooRecentHold:
		committed = last
		flags.tooSoon = true
	case tooSoon:
		committed = last
		flags.tooSoon = true
	default:
		s.lastUpdateTS = nowS
	}

	if hasLast && !forceOpen && !forceClose {
		committed = clamp(committed, last-p.DuMaxPct, last+p.DuMaxPct)
	}

	out := int(math.Round(clamp(committed, 0, 100)))
	if s.hasMinEffective && out > 0 && float64(out) < s.minEffectivePct {
		out = int(math.Round(s.minEffectivePct))
	}

	s.hasLastPercent, s.lastPercent = true, float64(out)
	if targetC != nil {
		s.hasLastTarget, s.lastTargetC = true, *targetC
	}
	if committed != last || !hasLast {
		s.lastHoldTS = nowS
	}

	return out, flags
}

// dzStatus bundles the per-cycle dead-zone observation used both to
// mutate state and to populate telemetry.
type dzStatus struct {
	trvDeltaK  float64
	hasDelta   bool
	timeDeltaS float64
}

// observeDeadZone implements spec §4.5's dead-zone learning using
// trv_temp_C when present. It raises min_effective_percent after
// dz_hits_required weak-response windows at a small committed percent;
// the hit counter is reset only by a raise, not by a window that does
// not qualify. It decays the floor when the TRV clearly warmed while a
// floor is set. Absent trv_temp_C freezes both the counter and the
// learned minimum. The learned floor is always kept within
// [deadzone_min, deadzone_max] (spec §3.2's plant bounds).
func observeDeadZone(s *State, p Params, trvTempC *float64, committedPercent float64, errorK float64, toleranceK float64, nowS float64) dzStatus {
	if trvTempC == nil {
		return dzStatus{}
	}
	if !s.hasLastTRVTemp {
		s.hasLastTRVTemp, s.lastTRVTempC, s.lastTRVTempTS = true, *trvTempC, nowS
		return dzStatus{}
	}

	delta := *trvTempC - s.lastTRVTempC
	timeDelta := nowS - s.lastTRVTempTS
	status := dzStatus{trvDeltaK: delta, hasDelta: true, timeDeltaS: timeDelta}

	if timeDelta < p.DZTimeS {
		return status
	}

	needsHeat := errorK > toleranceK
	smallCommand := committedPercent > 0 && committedPercent <= p.DZThresholdPct
	weakResponse := delta <= p.DZTempDeltaK

	if needsHeat && smallCommand && weakResponse {
		s.deadZoneHits++
		if s.deadZoneHits >= p.DZHitsRequired {
			floor := committedPercent + p.DZRaisePct
			if s.hasMinEffective && s.minEffectivePct > floor {
				floor = s.minEffectivePct
			}
			s.hasMinEffective = true
			s.minEffectivePct = clamp(floor, p.DeadzoneMin, p.DeadzoneMax)
			s.deadZoneHits = 0
		}
	} else if delta > p.DZTempDeltaK && s.hasMinEffective {
		s.minEffectivePct -= p.DZDecayPct
		if s.minEffectivePct <= p.DeadzoneMin {
			s.hasMinEffective = false
			s.minEffectivePct = 0
		}
	}

	s.lastTRVTempC, s.lastTRVTempTS = *trvTempC, nowS
	return status
}
