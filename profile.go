package thermalctl

// profileBufferCap bounds the raw (percent, rate) sample buffer used for
// response-profile classification. The buffer itself is never persisted
// (spec §4.9); export writes only its length, as profile_samples, and
// restore does not read that field back, so a restored record starts
// with an empty buffer.
const profileBufferCap = 64

// observeProfile records one (commanded percent, observed rate) pair and
// re-classifies the TRV's response profile once enough samples have
// accumulated (spec §4.3). This is advisory telemetry: nothing the
// predictor does depends on its result.
func observeProfile(s *State, p Params, commandedPct, observedRateKPM float64) {
	s.profileSamples = append(s.profileSamples, profileSample{percent: commandedPct, rateKPM: observedRateKPM})
	if len(s.profileSamples) > profileBufferCap {
		s.profileSamples = s.profileSamples[len(s.profileSamples)-profileBufferCap:]
	}
	if len(s.profileSamples) < p.ProfileSampleFloor {
		s.profile = ProfileUnknown
		s.profileConfidence = 0
		return
	}
	profile, confidence := classifyProfile(s.profileSamples)
	s.profileConfidence = confidence
	if confidence >= p.ProfileConfidenceFloor {
		s.profile = profile
	} else {
		s.profile = ProfileUnknown
	}
}

// bucketRates partitions samples into low (<=33%), mid, and high (>=67%)
// command buckets and returns each bucket's mean rate and its member
// count.
func bucketRates(samples []profileSample) (low, mid, high float64, lowN, midN, highN int) {
	for _, s := range samples {
		switch {
		case s.percent <= 33:
			low += s.rateKPM
			lowN++
		case s.percent >= 67:
			high += s.rateKPM
			highN++
		default:
			mid += s.rateKPM
			midN++
		}
	}
	if lowN > 0 {
		low /= float64(lowN)
	}
	if midN > 0 {
		mid /= float64(midN)
	}
	if highN > 0 {
		high /= float64(highN)
	}
	return
}

// classifyProfile buckets the accumulated samples into low/mid/high
// command bands and compares their mean rates to tell apart a roughly
// linear response, a thresholded (near-zero until some command level,
// then responsive) one, and an exponential (accelerating) one.
//
// Confidence is the fraction of the three bands that had at least one
// sample; a profile call with all three bands populated is maximally
// confident, one missing a band is penalised proportionally.
func classifyProfile(samples []profileSample) (Profile, float64) {
	low, mid, high, lowN, midN, highN := bucketRates(samples)
	populated := 0
	for _, n := range []int{lowN, midN, highN} {
		if n > 0 {
			populated++
		}
	}
	confidence := float64(populated) / 3

	if lowN == 0 || highN == 0 {
		return ProfileUnknown, confidence
	}

	lowToMid := mid - low
	midToHigh := high - mid

	switch {
	case low <= 0 && high > 0:
		return ProfileThreshold, confidence
	case midToHigh > lowToMid*1.5 && lowToMid >= 0:
		return ProfileExponential, confidence
	default:
		return ProfileLinear, confidence
	}
}
