package thermalctl

// Distribute splits a group-level valve percent across TRVs sharing one
// room, boosting colder TRVs proportionally to how far they trail the
// warmest one (spec §4.6). TRVs without a reported local temperature are
// treated as being at the warmest temperature, i.e. neutral: they
// receive exactly uTotal.
//
// The distributor never reduces a TRV below uTotal; it only boosts, so
// the warmest TRV (or any TRV with no reading) always receives uTotal
// and colder TRVs receive more.
func Distribute(uTotal float64, localTemps map[string]*float64, kPctPerK float64) map[string]float64 {
	if len(localTemps) == 0 {
		return map[string]float64{}
	}

	var warm float64
	var anyReading bool
	for _, t := range localTemps {
		if t == nil {
			continue
		}
		if !anyReading || *t > warm {
			warm, anyReading = *t, true
		}
	}

	out := make(map[string]float64, len(localTemps))
	for id, t := range localTemps {
		if !anyReading || t == nil {
			out[id] = clamp(uTotal, 0, 100)
			continue
		}
		out[id] = clamp(uTotal+(warm-*t)*kPctPerK, 0, 100)
	}
	return out
}
