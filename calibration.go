package thermalctl

import "github.com/google/uuid"

// StartCalibrationProbe marks s as undergoing a controlled dead-zone probe
// and mints an opaque run identifier for it (spec §3.3's reserved
// is_calibration_active flag). The host decides when a probe sequence
// runs; the core only tracks whether one is active and lets it be
// correlated across a snapshot/restore cycle via the returned ID.
//
// Calling StartCalibrationProbe on an already-active probe replaces the
// identifier and returns the new one; it does not stack.
func StartCalibrationProbe(s *State) string {
	id := uuid.NewString()
	s.isCalibrationActive = true
	s.calibrationProbeID = id
	return id
}

// EndCalibrationProbe clears s's probe flag and identifier. It is a no-op
// if no probe is active.
func EndCalibrationProbe(s *State) {
	s.isCalibrationActive = false
	s.calibrationProbeID = ""
}

// CalibrationProbeID returns s's current probe identifier and whether one
// is active.
func CalibrationProbeID(s *State) (string, bool) {
	return s.calibrationProbeID, s.isCalibrationActive
}
